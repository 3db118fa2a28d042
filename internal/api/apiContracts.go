package api

// requests---------------------

type ChatRequest struct {
	Question string `json:"question" validate:"required" example:"How do I validate my startup idea?"`
	Language string `json:"language,omitempty" example:"en"`
	// AutoStageDetection defaults to true when omitted, so a pointer keeps
	// "absent" distinguishable from an explicit false.
	AutoStageDetection *bool    `json:"auto_stage_detection,omitempty"`
	Stages             []string `json:"stages,omitempty" example:"01_Ideation_Stage"`
}

// responses--------------------

type ChatResponse struct {
	Answer         string   `json:"answer"`
	Sources        []string `json:"sources"`
	ContextUsed    int      `json:"context_used"`
	Success        bool     `json:"success"`
	DetectedStages []string `json:"detected_stages"`
}

type ModalResponse struct {
	Answer  string `json:"answer"`
	Success bool   `json:"success"`
}

type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Bad Request"`
}

type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	DocsURL string `json:"docs_url"`
}

type HealthResponse struct {
	Status     string `json:"status" example:"healthy"`
	Collection string `json:"collection" example:"startup_advisor_kb"`
	Points     uint64 `json:"points"`
	VectorDB   string `json:"vector_db" example:"ok"`
}

type MultimodalHealthResponse struct {
	Status string `json:"status" example:"healthy"`
	Model  string `json:"model"`
}
