package adapter

import (
	"github.com/startup-advisor/backend/internal/api"
	"github.com/startup-advisor/backend/internal/domain/advice"
)

// ToChatResponse normalizes nil slices so clients always see JSON arrays,
// never null or a missing key.
func ToChatResponse(result advice.ChatResult) api.ChatResponse {
	sources := result.Sources
	if sources == nil {
		sources = []string{}
	}
	detected := result.DetectedStages
	if detected == nil {
		detected = []string{}
	}
	return api.ChatResponse{
		Answer:         result.Answer,
		Sources:        sources,
		ContextUsed:    result.ContextUsed,
		Success:        result.Success,
		DetectedStages: detected,
	}
}

func ToModalResponse(result advice.ModalResult) api.ModalResponse {
	return api.ModalResponse{
		Answer:  result.Answer,
		Success: result.Success,
	}
}

func BadRequest(code int, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Code:    code,
		Message: message,
	}
}
