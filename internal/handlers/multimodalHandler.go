package handlers

import (
	"net/http"
	"strings"

	"github.com/startup-advisor/backend/internal/adapter"
)

// ChatWithImageHandler godoc
// @Summary      Ask about an image
// @Description  Analyzes an uploaded image (mockup, pitch slide, screenshot) together with the question.
// @Tags         Chat
// @Accept       multipart/form-data
// @Produce      json
// @Param        question  formData  string  true   "The question about the image"
// @Param        language  formData  string  false  "Answer language (en or ar)"
// @Param        image     formData  file    true   "The image file"
// @Success      200  {object}  api.ModalResponse
// @Failure      400  {object}  api.ErrorResponse "Missing question, missing image, or not an image"
// @Router       /chat-with-image [post]
func ChatWithImageHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	upload, ok := readUpload(w, r, "image")
	if !ok {
		return
	}
	if !strings.HasPrefix(upload.mimeType, "image/") {
		WriteErrorResponse(w, http.StatusBadRequest, "Uploaded file must be an image")
		return
	}

	result, err := ragService.ChatWithImage(r.Context(), upload.question, upload.data, upload.mimeType, upload.language)
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToModalResponse(result))
}

// ChatWithFileHandler godoc
// @Summary      Ask about a document
// @Description  Analyzes an uploaded document (pitch deck PDF, report, plain text) together with the question.
// @Tags         Chat
// @Accept       multipart/form-data
// @Produce      json
// @Param        question  formData  string  true   "The question about the document"
// @Param        language  formData  string  false  "Answer language (en or ar)"
// @Param        file      formData  file    true   "The document to analyze"
// @Success      200  {object}  api.ModalResponse
// @Failure      400  {object}  api.ErrorResponse "Missing question, missing file, or unsupported file type"
// @Router       /chat-with-file [post]
func ChatWithFileHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	upload, ok := readUpload(w, r, "file")
	if !ok {
		return
	}
	if !isSupportedDocumentType(upload.mimeType) {
		WriteErrorResponse(w, http.StatusBadRequest, "Unsupported file type. Use PDF, text, or Office documents")
		return
	}

	result, err := ragService.ChatWithFile(r.Context(), upload.question, upload.data, upload.filename, upload.mimeType, upload.language)
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToModalResponse(result))
}

func isSupportedDocumentType(mimeType string) bool {
	if mimeType == "application/pdf" {
		return true
	}
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	return strings.HasPrefix(mimeType, "application/vnd.openxmlformats")
}
