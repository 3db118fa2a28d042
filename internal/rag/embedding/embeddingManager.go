package embedding

import "context"

// Embedder maps text to fixed-length vectors. Both backends are pinned to the
// same output dimensionality so the collection schema never depends on which
// provider is active.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}
