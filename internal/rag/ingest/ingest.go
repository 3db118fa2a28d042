package ingest

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/metrics"
	"github.com/startup-advisor/backend/internal/rag/parser"
	"github.com/startup-advisor/backend/internal/rag/splitter"
	"github.com/startup-advisor/backend/internal/rag/vectorDB"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

var logger = logger_i.NewLogger("Document Ingestion ")

// Run walks dataDir for markdown advice files and loads them into the vector
// store. The first path segment under dataDir names the stage; files sitting
// directly in dataDir fall back to the "General" stage. A missing dataDir is
// a clean no-op so the API can serve an empty knowledge base.
func Run(ctx context.Context, dataDir string, store vectorDB.DataProcessor) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_ingestion", time.Since(start)) }()

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		logger.Warn("Data directory does not exist, skipping ingestion", "dir", dataDir)
		return nil
	}

	if err := store.InitializeCollection(ctx); err != nil {
		logger.Error("Error initializing collection", "error", err)
		return err
	}

	documents, err := loadDocuments(dataDir)
	if err != nil {
		logger.Error("Error walking data directory", "dir", dataDir, "error", err)
		return err
	}
	if len(documents) == 0 {
		logger.Warn("No markdown files found", "dir", dataDir)
		return nil
	}

	chunks := splitter.New(config.ChunkSize, config.ChunkOverlap).SplitDocuments(documents)
	logger.Info("Ingesting knowledge base", "documents", len(documents), "chunks", len(chunks))
	metrics.AddDocumentsIngested(len(documents))
	metrics.AddChunksIngested(len(chunks))

	store.StoreDocuments(ctx, chunks)
	return nil
}

func loadDocuments(dataDir string) ([]advice.Document, error) {
	var documents []advice.Document

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Error("Error reading file, skipping", "path", path, "error", err)
			return nil
		}

		base := advice.Metadata{
			Stage: stageFromPath(dataDir, path),
			Book:  strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			Path:  path,
		}
		parsed := parser.ParseMarkdownAdvices(string(content), base)
		logger.Debug("Parsed advice file", "path", path, "stage", base.Stage, "blocks", len(parsed))
		documents = append(documents, parsed...)
		return nil
	})
	return documents, err
}

// stageFromPath maps data/<stage>/.../file.md to <stage>.
func stageFromPath(dataDir, path string) string {
	rel, err := filepath.Rel(dataDir, path)
	if err != nil {
		return "General"
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return "General"
	}
	return parts[0]
}
