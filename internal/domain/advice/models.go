package advice

// Metadata travels from the parsed markdown file through chunking into the
// vector store payload. Stage and Book come from the dataset layout; the
// optional fields are parsed out of the advice block body when present.
type Metadata struct {
	Stage      string   `json:"stage"`
	Book       string   `json:"book"`
	Path       string   `json:"path"`
	AdviceID   string   `json:"advice_id,omitempty"`
	StageLabel string   `json:"stage_label,omitempty"`
	Topic      string   `json:"topic,omitempty"`
	Complexity string   `json:"complexity,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Document is one advice block (or a whole file when no blocks are marked).
type Document struct {
	Content  string
	Metadata Metadata
}

// Chunk is a bounded-length sub-span of a Document, carrying the parent
// metadata verbatim.
type Chunk struct {
	Content  string
	Metadata Metadata
}

// RetrievedContext is one similarity-search hit, ranked by descending score.
type RetrievedContext struct {
	Content  string
	Source   string
	Score    float32
	Metadata Metadata
}

// ChatQuery is the orchestrator input for the text chat path.
type ChatQuery struct {
	Question           string
	Language           string
	AutoStageDetection bool
	Stages             []string
}

// ChatResult is the orchestrator output for the text chat path.
type ChatResult struct {
	Answer         string   `json:"answer"`
	Sources        []string `json:"sources"`
	ContextUsed    int      `json:"context_used"`
	Success        bool     `json:"success"`
	DetectedStages []string `json:"detected_stages"`
}

// ModalResult is the reply shape for the image and file chat paths.
type ModalResult struct {
	Answer  string `json:"answer"`
	Success bool   `json:"success"`
}
