package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/startup-advisor/backend/internal/adapter"
	"github.com/startup-advisor/backend/internal/api"
	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

var (
	ragService rag.Service //private singleton
	once       sync.Once
	logRH      *logger_i.Logger
)

// InitHandlers wires the retrieval service into the HTTP layer. Must run
// before the server starts routing.
func InitHandlers(service rag.Service) {
	once.Do(func() {
		ragService = service
		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting request handlers")
	})
}

// GetHandler godoc
// @Summary      Service banner
// @Description  Returns the service name and a pointer to the docs.
// @Tags         Info
// @Produce      json
// @Success      200  {object}  api.RootResponse
// @Router       / [get]
func GetHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.RootResponse{
		Message: "Startup Advisor API",
		Status:  "running",
		DocsURL: "/swagger/index.html",
	})
}

// ChatHandler godoc
// @Summary      Ask the startup advisor
// @Description  Answers a question grounded in the knowledge base. Stage filters are detected automatically; caller-supplied stages apply when auto detection is off.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest  true  "Question, language and optional stage filters"
// @Success      200      {object}  api.ChatResponse
// @Failure      400      {object}  api.ErrorResponse "Empty question or unsupported language"
// @Router       /chat [post]
func ChatHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.ChatRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the Chat handler reader :", "error", err)
		}
	}(request.Body)
	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad Chat Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if strings.TrimSpace(requestData.Question) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	autoDetect := true
	if requestData.AutoStageDetection != nil {
		autoDetect = *requestData.AutoStageDetection
	}

	result, err := ragService.Chat(request.Context(), advice.ChatQuery{
		Question:           requestData.Question,
		Language:           defaultLanguage(requestData.Language),
		AutoStageDetection: autoDetect,
		Stages:             requestData.Stages,
	})
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToChatResponse(result))
}

func defaultLanguage(language string) string {
	if language == "" {
		return config.LangEnglish
	}
	return language
}
