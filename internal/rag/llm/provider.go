package llm

import (
	"context"

	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag/stages"
)

// GroundedAnswer is the result of the context-grounded generation path.
// Sources lists the distinct book names that went into the prompt, in
// insertion order.
type GroundedAnswer struct {
	Answer      string
	Sources     []string
	ContextUsed int
	Success     bool
}

// Provider wraps the generative model. Provider-side faults never surface as
// errors: every method folds them into a success=false result carrying a
// language-appropriate apology with the raw error detail appended.
type Provider interface {
	DetectStages(ctx context.Context, question string) stages.Detection
	GenerateAnswer(ctx context.Context, question string, contexts []advice.RetrievedContext, language string) GroundedAnswer
	GenerateWithImage(ctx context.Context, question string, image []byte, mimeType, language string) advice.ModalResult
	GenerateWithFile(ctx context.Context, question string, file []byte, filename, mimeType, language string) advice.ModalResult
}
