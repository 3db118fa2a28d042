package handlers

import (
	"net/http"

	"github.com/startup-advisor/backend/internal/api"
	"github.com/startup-advisor/backend/internal/config"
)

// HealthHandler godoc
// @Summary      Knowledge base health
// @Description  Reports the vector store status and how many chunks the collection holds.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	points, reachable := ragService.KnowledgeBaseStatus(r.Context())

	status, vectorDB := "healthy", "ok"
	if !reachable {
		status, vectorDB = "degraded", "unreachable"
	}
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{
		Status:     status,
		Collection: config.CollectionName,
		Points:     points,
		VectorDB:   vectorDB,
	})
}

// MultimodalHealthHandler godoc
// @Summary      Multimodal health
// @Description  Reports whether image and file analysis is available and which model serves it.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.MultimodalHealthResponse
// @Router       /multimodal/health [get]
func MultimodalHealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.MultimodalHealthResponse{
		Status: "healthy",
		Model:  config.GeminiModelName,
	})
}
