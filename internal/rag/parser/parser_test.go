package parser_test

import (
	"reflect"
	"testing"

	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag/parser"
)

const adviceFile = `# Lean Startup Notes

## advice 1

**stage:** Ideation
**topic:** Customer Discovery
**complexity:** beginner
**tags:** ["interviews", "validation"]

Talk to potential customers before writing any code.

## advice 2

**stage:** Validation

Build the smallest thing that tests your riskiest assumption.
`

func TestParseMarkdownAdvices(t *testing.T) {
	base := advice.Metadata{Stage: "01_Ideation_Stage", Book: "lean", Path: "data/01_Ideation_Stage/lean.md"}

	docs := parser.ParseMarkdownAdvices(adviceFile, base)
	if len(docs) != 2 {
		t.Fatalf("documents got %d, want 2", len(docs))
	}

	first := docs[0]
	if first.Metadata.AdviceID != "advice 1" {
		t.Errorf("AdviceID got %q", first.Metadata.AdviceID)
	}
	if first.Metadata.StageLabel != "Ideation" {
		t.Errorf("StageLabel got %q", first.Metadata.StageLabel)
	}
	if first.Metadata.Topic != "Customer Discovery" {
		t.Errorf("Topic got %q", first.Metadata.Topic)
	}
	if first.Metadata.Complexity != "beginner" {
		t.Errorf("Complexity got %q", first.Metadata.Complexity)
	}
	if !reflect.DeepEqual(first.Metadata.Tags, []string{"interviews", "validation"}) {
		t.Errorf("Tags got %v", first.Metadata.Tags)
	}
	// File-level metadata carries through to every block.
	if first.Metadata.Stage != base.Stage || first.Metadata.Book != base.Book {
		t.Errorf("base metadata not preserved: %+v", first.Metadata)
	}

	second := docs[1]
	if second.Metadata.AdviceID != "advice 2" {
		t.Errorf("AdviceID got %q", second.Metadata.AdviceID)
	}
	if second.Metadata.Topic != "" || len(second.Metadata.Tags) != 0 {
		t.Errorf("missing fields should stay empty: %+v", second.Metadata)
	}
}

func TestParseMarkdownAdvices_NoHeadings(t *testing.T) {
	base := advice.Metadata{Stage: "General", Book: "notes"}

	docs := parser.ParseMarkdownAdvices("  Plain prose without any advice headings.  ", base)
	if len(docs) != 1 {
		t.Fatalf("documents got %d, want 1", len(docs))
	}
	if docs[0].Content != "Plain prose without any advice headings." {
		t.Errorf("Content got %q", docs[0].Content)
	}
	if docs[0].Metadata.AdviceID != "" {
		t.Errorf("AdviceID should be empty for a headingless file, got %q", docs[0].Metadata.AdviceID)
	}
}

func TestParseMarkdownAdvices_Empty(t *testing.T) {
	docs := parser.ParseMarkdownAdvices("   \n  ", advice.Metadata{})
	if len(docs) != 0 {
		t.Fatalf("documents got %d, want 0 for blank input", len(docs))
	}
}
