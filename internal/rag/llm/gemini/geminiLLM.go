package gemini

import (
	"context"
	"strings"
	"sync"

	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag/llm"
	"github.com/startup-advisor/backend/internal/rag/stages"
	"github.com/startup-advisor/backend/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var (
	logger       *logger_i.Logger
	geminiClient *llmClient
	once         sync.Once
)

// GetGeminiClient returns the process-wide Gemini provider, or nil when the
// client could not be created.
func GetGeminiClient(ctx context.Context, apiKey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, apiKey, modelName)
	})

	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func newGeminiClient(ctx context.Context, apiKey string, modelName string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.Error("Error creating Gemini client", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
}

func (c *llmClient) DetectStages(ctx context.Context, question string) stages.Detection {
	raw, err := c.generate(ctx, genai.Text(stages.ClassifierPrompt(question)))
	if err != nil {
		logger.Error("Stage detection call failed", "error", err)
		return stages.Detection{Method: stages.MethodEmpty}
	}

	detection := stages.ParseDetection(raw)
	logger.Debug("Stage detection", "method", detection.Method, "stages", detection.Stages)
	return detection
}

func (c *llmClient) GenerateAnswer(ctx context.Context, question string, contexts []advice.RetrievedContext, language string) llm.GroundedAnswer {
	var contextLines []string
	var sources []string
	seen := make(map[string]bool)

	for _, doc := range contexts {
		content := strings.TrimSpace(doc.Content)
		if content == "" {
			continue
		}
		contextLines = append(contextLines, "Source: "+doc.Source+"\nContent:\n"+content+"\n")
		if !seen[doc.Source] {
			seen[doc.Source] = true
			sources = append(sources, doc.Source)
		}
	}

	prompt := groundedPrompt(question, strings.Join(contextLines, "\n"), language)

	answer, err := c.generate(ctx, genai.Text(prompt))
	if err != nil {
		logger.Error("Grounded generation failed", "error", err)
		return llm.GroundedAnswer{
			Answer: apology(apologyRequest, language, err),
		}
	}

	return llm.GroundedAnswer{
		Answer:      answer,
		Sources:     sources,
		ContextUsed: len(contexts),
		Success:     true,
	}
}

func (c *llmClient) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
