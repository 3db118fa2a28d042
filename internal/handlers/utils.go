package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/startup-advisor/backend/internal/adapter"
	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/rag"
)

type uploadData struct {
	question string
	language string
	filename string
	mimeType string
	data     []byte
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(httpCode, message))
}

func writeChatError(w http.ResponseWriter, err error) {
	if errors.Is(err, rag.ErrUnsupportedLanguage) {
		WriteErrorResponse(w, http.StatusBadRequest, "Unsupported language. Use 'en' or 'ar'")
		return
	}
	logRH.Error("Chat request failed", "error", err)
	WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
}

// readUpload parses a multipart chat upload: the question and language form
// values plus the file under fileField. Writes the 400 itself on failure.
func readUpload(w http.ResponseWriter, r *http.Request, fileField string) (uploadData, bool) {
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return uploadData{}, false
	}

	question := r.FormValue("question")
	if strings.TrimSpace(question) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "question is required")
		return uploadData{}, false
	}

	fileReader, fileMetadata, err := r.FormFile(fileField)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Could not retrieve "+fileField)
		return uploadData{}, false
	}
	defer fileReader.Close()

	data, err := io.ReadAll(fileReader)
	if err != nil {
		logRH.Error("Error reading upload", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Could not read "+fileField)
		return uploadData{}, false
	}

	return uploadData{
		question: question,
		language: defaultLanguage(r.FormValue("language")),
		filename: fileMetadata.Filename,
		mimeType: fileMetadata.Header.Get("Content-Type"),
		data:     data,
	}, true
}
