package rag

import (
	"context"
	"time"

	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/metrics"
	"github.com/startup-advisor/backend/internal/rag/llm"
	"github.com/startup-advisor/backend/internal/rag/stages"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

func traceID(ctx context.Context) string {
	if id, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return id
	}
	return "unknown"
}

func fallbackResult(detection stages.Detection) advice.ChatResult {
	return advice.ChatResult{
		Answer:         FallbackAnswer,
		Sources:        []string{},
		DetectedStages: detection.Stages,
	}
}

func (s *service) executeCacheCheckStep(ctx context.Context, query advice.ChatQuery) (advice.ChatResult, bool) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_lookup", time.Since(start)) }()

	return s.answerCache.Get(ctx, query.Question, query.Language)
}

// executeStageStep resolves the stage filter. Automatic detection takes
// precedence over caller-supplied stages; those only apply when detection
// is switched off.
func (s *service) executeStageStep(ctx context.Context, log *logger_i.Logger, query advice.ChatQuery) stages.Detection {
	if query.AutoStageDetection {
		start := time.Now()
		defer func() { metrics.CaptureExecutionMetrics("stage_detection", time.Since(start)) }()

		detection := s.llmProvider.DetectStages(ctx, query.Question)
		log.Debug("Stage detection", "method", detection.Method, "stages", detection.Stages)
		return detection
	}
	if len(query.Stages) > 0 {
		return stages.Detection{Method: stages.MethodParsed, Stages: query.Stages}
	}
	return stages.Detection{Method: stages.MethodEmpty}
}

func (s *service) executeVectorSearchStep(ctx context.Context, log *logger_i.Logger, question string, stageFilter []string) []advice.RetrievedContext {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	contexts, err := s.vectorDB.SearchSimilar(ctx, question, config.SearchLimit, stageFilter)
	if err != nil {
		// Retrieval faults degrade to the no-context fallback rather than
		// failing the whole request.
		log.Error("Vector search failed", "error", err)
		return nil
	}
	return contexts
}

func (s *service) executeLLMStep(ctx context.Context, log *logger_i.Logger, query advice.ChatQuery, contexts []advice.RetrievedContext) llm.GroundedAnswer {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	answer := s.llmProvider.GenerateAnswer(ctx, query.Question, contexts, query.Language)
	log.Debug("Answer generated", "contextUsed", answer.ContextUsed, "success", answer.Success)
	return answer
}
