package splitter_test

import (
	"strings"
	"testing"

	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag/splitter"
)

func TestSplitText_ShortTextSingleChunk(t *testing.T) {
	s := splitter.New(500, 50)

	chunks := s.SplitText("Talk to customers early.")
	if len(chunks) != 1 {
		t.Fatalf("chunks got %d, want 1", len(chunks))
	}
	if chunks[0] != "Talk to customers early." {
		t.Errorf("chunk got %q", chunks[0])
	}
}

func TestSplitText_PrefersParagraphBreaks(t *testing.T) {
	s := splitter.New(40, 0)

	text := "First paragraph here.\n\nSecond paragraph here."
	chunks := s.SplitText(text)
	if len(chunks) != 2 {
		t.Fatalf("chunks got %d, want 2: %v", len(chunks), chunks)
	}
	if chunks[0] != "First paragraph here." || chunks[1] != "Second paragraph here." {
		t.Errorf("chunks got %v", chunks)
	}
}

func TestSplitText_RespectsChunkSize(t *testing.T) {
	s := splitter.New(20, 5)

	text := strings.TrimSpace(strings.Repeat("word ", 50))
	chunks := s.SplitText(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 20 {
			t.Errorf("chunk %d exceeds size: %d chars %q", i, len(chunk), chunk)
		}
		if chunk == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}

func TestSplitText_OverlapCarriesContext(t *testing.T) {
	s := splitter.New(15, 8)

	chunks := s.SplitText("alpha beta gamma delta")
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %v", chunks)
	}
	// The word preceding a boundary reappears at the start of the next chunk.
	if !strings.HasPrefix(chunks[1], strings.Fields(chunks[0])[len(strings.Fields(chunks[0]))-1]) {
		t.Errorf("no overlap between %q and %q", chunks[0], chunks[1])
	}
}

func TestSplitDocuments_PropagatesMetadata(t *testing.T) {
	s := splitter.New(30, 0)

	docs := []advice.Document{
		{
			Content:  "First sentence goes here. Second sentence goes here. Third one too.",
			Metadata: advice.Metadata{Stage: "01_Ideation_Stage", Book: "lean"},
		},
	}
	chunks := s.SplitDocuments(docs)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for _, chunk := range chunks {
		if chunk.Metadata.Stage != "01_Ideation_Stage" || chunk.Metadata.Book != "lean" {
			t.Errorf("metadata not propagated: %+v", chunk.Metadata)
		}
	}
}
