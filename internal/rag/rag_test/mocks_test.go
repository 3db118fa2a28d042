package rag_test

import (
	"context"

	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag/llm"
	"github.com/startup-advisor/backend/internal/rag/stages"
)

type MockVectorDB struct {
	OnSearchSimilar func(ctx context.Context, query string, limit int, stageFilter []string) ([]advice.RetrievedContext, error)
	OnPointCount    func(ctx context.Context) (uint64, bool)

	StoredChunks []advice.Chunk
}

func (m *MockVectorDB) InitializeCollection(ctx context.Context) error {
	return nil
}

func (m *MockVectorDB) StoreDocuments(ctx context.Context, chunks []advice.Chunk) {
	m.StoredChunks = append(m.StoredChunks, chunks...)
}

func (m *MockVectorDB) SearchSimilar(ctx context.Context, query string, limit int, stageFilter []string) ([]advice.RetrievedContext, error) {
	if m.OnSearchSimilar != nil {
		return m.OnSearchSimilar(ctx, query, limit, stageFilter)
	}
	return nil, nil
}

func (m *MockVectorDB) PointCount(ctx context.Context) (uint64, bool) {
	if m.OnPointCount != nil {
		return m.OnPointCount(ctx)
	}
	return 0, false
}

type MockLLM struct {
	OnDetectStages      func(ctx context.Context, question string) stages.Detection
	OnGenerateAnswer    func(ctx context.Context, question string, contexts []advice.RetrievedContext, language string) llm.GroundedAnswer
	OnGenerateWithImage func(ctx context.Context, question string, image []byte, mimeType, language string) advice.ModalResult
	OnGenerateWithFile  func(ctx context.Context, question string, file []byte, filename, mimeType, language string) advice.ModalResult

	DetectCalls   int
	GenerateCalls int
}

func (m *MockLLM) DetectStages(ctx context.Context, question string) stages.Detection {
	m.DetectCalls++
	if m.OnDetectStages != nil {
		return m.OnDetectStages(ctx, question)
	}
	return stages.Detection{Method: stages.MethodEmpty}
}

func (m *MockLLM) GenerateAnswer(ctx context.Context, question string, contexts []advice.RetrievedContext, language string) llm.GroundedAnswer {
	m.GenerateCalls++
	if m.OnGenerateAnswer != nil {
		return m.OnGenerateAnswer(ctx, question, contexts, language)
	}
	return llm.GroundedAnswer{}
}

func (m *MockLLM) GenerateWithImage(ctx context.Context, question string, image []byte, mimeType, language string) advice.ModalResult {
	if m.OnGenerateWithImage != nil {
		return m.OnGenerateWithImage(ctx, question, image, mimeType, language)
	}
	return advice.ModalResult{}
}

func (m *MockLLM) GenerateWithFile(ctx context.Context, question string, file []byte, filename, mimeType, language string) advice.ModalResult {
	if m.OnGenerateWithFile != nil {
		return m.OnGenerateWithFile(ctx, question, file, filename, mimeType, language)
	}
	return advice.ModalResult{}
}
