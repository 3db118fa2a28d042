package rag

import (
	"context"
	"errors"
	"time"

	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/data/cache"
	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/metrics"
	"github.com/startup-advisor/backend/internal/rag/llm"
	"github.com/startup-advisor/backend/internal/rag/vectorDB"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

// ErrUnsupportedLanguage is returned before any model or database call when
// the requested language is not in the supported set.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// FallbackAnswer is the fixed reply when retrieval yields no context. The
// model is never called in that case, so the answer cannot hallucinate
// around an empty knowledge base.
const FallbackAnswer = "Sorry, I could not find enough relevant information to answer your question. Please try another question related to entrepreneurship or startup building."

/*
ARCHITECTURE NOTE: OPAQUE INTERFACE PATTERN
---------------------------------------------------------

1. Service (Interface):
  - This is the PUBLIC contract.
  - Handlers only see behavior, never the vector store or LLM clients.

2. service (Private Struct):
  - This is the PRIVATE implementation.
  - It holds the state (vector store, LLM provider, answer cache).
  - It is lowercase so external packages cannot reach our internal
    dependencies directly.

3. Pointer Receiver (*service):
  - By defining methods on (*service), the struct IMPLICITLY satisfies
    the Service interface.

4. Dependency Injection (NewService):
  - The constructor links the private struct to the public interface,
    so tests can swap real clients for mocks.
*/

// Service is the retrieval pipeline the HTTP layer talks to.
type Service interface {
	Chat(ctx context.Context, query advice.ChatQuery) (advice.ChatResult, error)
	ChatWithImage(ctx context.Context, question string, image []byte, mimeType, language string) (advice.ModalResult, error)
	ChatWithFile(ctx context.Context, question string, file []byte, filename, mimeType, language string) (advice.ModalResult, error)
	KnowledgeBaseStatus(ctx context.Context) (uint64, bool)
}

type service struct {
	vectorDB    vectorDB.DataProcessor
	llmProvider llm.Provider
	answerCache *cache.AnswerCache
	logger      *logger_i.Logger
}

// NewService constructor. answerCache may be nil, which disables caching.
func NewService(vector vectorDB.DataProcessor, llm llm.Provider, answerCache *cache.AnswerCache) Service {
	return &service{
		vectorDB:    vector,
		llmProvider: llm,
		answerCache: answerCache,
		logger:      logger_i.NewLogger("RAG Service :"),
	}
}

func (s *service) Chat(ctx context.Context, query advice.ChatQuery) (advice.ChatResult, error) {
	inMethodLogger := s.logger.With(config.TRACE_ID_KEY, traceID(ctx))

	if !config.IsSupportedLanguage(query.Language) {
		return advice.ChatResult{}, ErrUnsupportedLanguage
	}

	processContext, cancel := context.WithTimeout(ctx, config.ChatRequestTimeout)
	defer cancel()

	start := time.Now()
	status := "success"
	defer func() { metrics.CaptureChatMetrics(status, time.Since(start)) }()

	// Cache Check. Only the auto-detection path is cacheable: with detection
	// off, caller-pinned stage filters change the retrieval set for the same
	// question.
	cacheable := query.AutoStageDetection
	if cacheable {
		if cached, found := s.executeCacheCheckStep(processContext, query); found {
			inMethodLogger.Info("Answer served from cache")
			return cached, nil
		}
	}

	// Stage Resolution
	detection := s.executeStageStep(processContext, inMethodLogger, query)

	// Vector DB Search
	contexts := s.executeVectorSearchStep(processContext, inMethodLogger, query.Question, detection.Stages)

	if len(contexts) == 0 {
		status = "fallback"
		inMethodLogger.Info("No relevant context found", "stages", detection.Stages)
		return fallbackResult(detection), nil
	}

	// LLM Generation
	answer := s.executeLLMStep(processContext, inMethodLogger, query, contexts)
	if !answer.Success {
		status = "error"
	}

	result := advice.ChatResult{
		Answer:         answer.Answer,
		Sources:        answer.Sources,
		ContextUsed:    answer.ContextUsed,
		Success:        answer.Success,
		DetectedStages: detection.Stages,
	}

	if cacheable && result.Success {
		// Background Cache Save
		go s.answerCache.Put(context.WithoutCancel(ctx), query.Question, query.Language, result)
	}
	return result, nil
}

func (s *service) ChatWithImage(ctx context.Context, question string, image []byte, mimeType, language string) (advice.ModalResult, error) {
	if !config.IsSupportedLanguage(language) {
		return advice.ModalResult{}, ErrUnsupportedLanguage
	}

	processContext, cancel := context.WithTimeout(ctx, config.ChatRequestTimeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_image", time.Since(start)) }()

	return s.llmProvider.GenerateWithImage(processContext, question, image, mimeType, language), nil
}

func (s *service) ChatWithFile(ctx context.Context, question string, file []byte, filename, mimeType, language string) (advice.ModalResult, error) {
	if !config.IsSupportedLanguage(language) {
		return advice.ModalResult{}, ErrUnsupportedLanguage
	}

	processContext, cancel := context.WithTimeout(ctx, config.ChatRequestTimeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_file", time.Since(start)) }()

	return s.llmProvider.GenerateWithFile(processContext, question, file, filename, mimeType, language), nil
}

func (s *service) KnowledgeBaseStatus(ctx context.Context) (uint64, bool) {
	return s.vectorDB.PointCount(ctx)
}
