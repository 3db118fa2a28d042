package vectorDB

import (
	"context"

	"github.com/startup-advisor/backend/internal/domain/advice"
)

// DataProcessor is the contract the orchestrator and the ingestion pipeline
// program against. The implementation owns an embedder, so callers pass raw
// text and never see vectors.
type DataProcessor interface {
	// InitializeCollection is idempotent: it creates the collection when
	// absent and ensures the keyword payload indexes used for filtering.
	InitializeCollection(ctx context.Context) error

	// StoreDocuments embeds and upserts a batch of chunks. Failures are
	// logged and swallowed: the index simply stays partial (accepted weak
	// guarantee, query time degrades to the not-enough-information reply).
	StoreDocuments(ctx context.Context, chunks []advice.Chunk)

	// SearchSimilar returns up to limit hits ordered by descending score,
	// optionally restricted to any of the given stages. A missing
	// collection yields an empty result, not an error.
	SearchSimilar(ctx context.Context, query string, limit int, stages []string) ([]advice.RetrievedContext, error)

	// PointCount reports the number of stored points, false when the
	// collection does not exist or the store is unreachable.
	PointCount(ctx context.Context) (uint64, bool)
}
