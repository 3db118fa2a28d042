package googleEmbedding

import (
	"context"
	"sync"
	"time"

	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/rag/embedding"
	"github.com/startup-advisor/backend/pkg/logger_i"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	logger          *logger_i.Logger
	once            sync.Once
	embeddingClient *client
	dimension       = config.EmbeddingOutputDimensionality
)

type client struct {
	genAI *genai.Client
	model string
}

// GetGoogleEmbeddingClient returns the process-wide Gemini embedding client,
// or nil when initialization failed.
func GetGoogleEmbeddingClient(ctx context.Context, modelName string, apiKey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("google_embedding")
		newGoogleEmbedder(ctx, modelName, apiKey)
	})

	if embeddingClient == nil {
		return nil
	}
	return embeddingClient
}

func newGoogleEmbedder(ctx context.Context, modelName string, apiKey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.Error("Error creating Google embedding client", "error", err)
		return
	}
	embeddingClient = &client{
		genAI: c,
		model: modelName,
	}
	logger.Info("Google embedding client created", "model", modelName)
}

func (c *client) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	result, err := c.doCall(ctx, genai.Text(text), "RETRIEVAL_QUERY")
	if err != nil {
		logger.Error("Error getting query embedding from Google", "error", err)
		return nil, err
	}
	return result.Embeddings[0].Values, nil
}

func (c *client) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, &genai.Content{
			Parts: []*genai.Part{{Text: text}},
		})
	}

	result, err := c.doCall(ctx, contents, "RETRIEVAL_DOCUMENT")
	if err != nil && isRateLimited(err) {
		logger.Warn("Rate limit hit, retrying in 5 seconds", "error", err)
		time.Sleep(5 * time.Second)
		result, err = c.doCall(ctx, contents, "RETRIEVAL_DOCUMENT")
	}
	if err != nil {
		logger.Error("Error getting document embeddings from Google", "error", err)
		return nil, err
	}

	vectors := make([][]float32, 0, len(result.Embeddings))
	for _, emb := range result.Embeddings {
		vectors = append(vectors, emb.Values)
	}
	return vectors, nil
}

func (c *client) doCall(ctx context.Context, contents []*genai.Content, taskType string) (*genai.EmbedContentResponse, error) {
	return c.genAI.Models.EmbedContent(ctx, c.model, contents, &genai.EmbedContentConfig{
		OutputDimensionality: &dimension,
		TaskType:             taskType,
	})
}

func isRateLimited(err error) bool {
	if s, ok := status.FromError(err); ok {
		return s.Code() == codes.ResourceExhausted
	}
	return false
}
