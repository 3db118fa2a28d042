package openaiEmbedding

import (
	"context"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/rag/embedding"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

var (
	logger          *logger_i.Logger
	once            sync.Once
	embeddingClient *client
)

type client struct {
	openAI openai.Client
	model  string
}

// GetOpenAIEmbeddingClient returns the process-wide OpenAI embedding client.
// The model is requested at the same dimensionality as the Google backend so
// the two are interchangeable against one collection schema.
func GetOpenAIEmbeddingClient(modelName string, apiKey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("openai_embedding")
		if apiKey == "" {
			logger.Error("OPENAI_API_KEY is empty, OpenAI embedding backend unavailable")
			return
		}
		embeddingClient = &client{
			openAI: openai.NewClient(option.WithAPIKey(apiKey)),
			model:  modelName,
		}
		logger.Info("OpenAI embedding client created", "model", modelName)
	})

	if embeddingClient == nil {
		return nil
	}
	return embeddingClient
}

func (c *client) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (c *client) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return c.embed(ctx, texts)
}

func (c *client) embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.openAI.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model:      openai.EmbeddingModel(c.model),
		Dimensions: openai.Int(int64(config.EmbeddingOutputDimensionality)),
	})
	if err != nil {
		logger.Error("Error getting embeddings from OpenAI", "error", err)
		return nil, err
	}

	vectors := make([][]float32, len(resp.Data))
	for _, data := range resp.Data {
		vector := make([]float32, len(data.Embedding))
		for i, v := range data.Embedding {
			vector[i] = float32(v)
		}
		vectors[data.Index] = vector
	}
	return vectors, nil
}
