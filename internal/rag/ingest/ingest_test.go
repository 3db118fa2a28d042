package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag/ingest"
)

type fakeStore struct {
	initCalled bool
	chunks     []advice.Chunk
}

func (f *fakeStore) InitializeCollection(ctx context.Context) error {
	f.initCalled = true
	return nil
}

func (f *fakeStore) StoreDocuments(ctx context.Context, chunks []advice.Chunk) {
	f.chunks = append(f.chunks, chunks...)
}

func (f *fakeStore) SearchSimilar(ctx context.Context, query string, limit int, stages []string) ([]advice.RetrievedContext, error) {
	return nil, nil
}

func (f *fakeStore) PointCount(ctx context.Context) (uint64, bool) {
	return uint64(len(f.chunks)), true
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_IngestsMarkdownTree(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, filepath.Join(dataDir, "01_Ideation_Stage", "lean.md"), `## advice 1

**stage:** Ideation

Talk to customers before writing code.

## advice 2

Ship the smallest possible experiment.
`)
	writeFile(t, filepath.Join(dataDir, "general.md"), "General startup wisdom without headings.")
	writeFile(t, filepath.Join(dataDir, "01_Ideation_Stage", "notes.txt"), "not markdown, skipped")

	store := &fakeStore{}
	if err := ingest.Run(context.Background(), dataDir, store); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !store.initCalled {
		t.Error("collection was not initialized")
	}
	if len(store.chunks) < 3 {
		t.Fatalf("chunks got %d, want at least 3", len(store.chunks))
	}

	stagesSeen := map[string]bool{}
	booksSeen := map[string]bool{}
	for _, chunk := range store.chunks {
		stagesSeen[chunk.Metadata.Stage] = true
		booksSeen[chunk.Metadata.Book] = true
		if chunk.Content == "" {
			t.Error("empty chunk stored")
		}
	}
	if !stagesSeen["01_Ideation_Stage"] {
		t.Error("directory-derived stage missing")
	}
	if !stagesSeen["General"] {
		t.Error("root-level files should land in the General stage")
	}
	if !booksSeen["lean"] || !booksSeen["general"] {
		t.Errorf("book names not derived from filenames: %v", booksSeen)
	}
	if booksSeen["notes"] {
		t.Error("non-markdown file was ingested")
	}
}

func TestRun_MissingDirIsNoop(t *testing.T) {
	store := &fakeStore{}

	err := ingest.Run(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"), store)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if store.initCalled || len(store.chunks) != 0 {
		t.Error("missing data directory must not touch the vector store")
	}
}

func TestRun_EmptyDirSkipsStore(t *testing.T) {
	store := &fakeStore{}

	if err := ingest.Run(context.Background(), t.TempDir(), store); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(store.chunks) != 0 {
		t.Error("no chunks expected for an empty directory")
	}
}
