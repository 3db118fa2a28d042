// @title           Startup Advisor API
// @version         1.0
// @description     Retrieval-augmented startup advice with stage filtering and multimodal analysis
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/data/cache"
	"github.com/startup-advisor/backend/internal/handlers"
	"github.com/startup-advisor/backend/internal/rag"
	"github.com/startup-advisor/backend/internal/rag/embedding"
	"github.com/startup-advisor/backend/internal/rag/embedding/googleEmbedding"
	"github.com/startup-advisor/backend/internal/rag/embedding/openaiEmbedding"
	"github.com/startup-advisor/backend/internal/rag/ingest"
	"github.com/startup-advisor/backend/internal/rag/llm/gemini"
	"github.com/startup-advisor/backend/internal/rag/vectorDB/qdrantDB"
	"github.com/startup-advisor/backend/internal/server"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ListenAddr(), "server listen address")
	flag.Parse()

	googleAPIKey := config.GoogleAPIKey()
	if googleAPIKey == "" {
		logger.Error("GOOGLE_API_KEY is not set. Shutting down.")
		return
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	embeddingService := buildEmbedder(serviceContext, logger, googleAPIKey)
	vectorDB := qdrantDB.GetQdrantClient(serviceContext, embeddingService)
	llmProvider := gemini.GetGeminiClient(serviceContext, googleAPIKey, config.GeminiModelName)

	if vectorDB == nil || embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	if config.IngestOnStartup() {
		if err := ingest.Run(serviceContext, config.DataDir(), vectorDB); err != nil {
			logger.Error("Knowledge base ingestion failed, serving existing collection", "error", err)
		}
	}

	answerCache := cache.GetAnswerCache(serviceContext, config.RedisAddr())
	ragService := rag.NewService(vectorDB, llmProvider, answerCache)

	handlers.InitHandlers(ragService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

func buildEmbedder(ctx context.Context, logger *logger_i.Logger, googleAPIKey string) embedding.Embedder {
	if config.EmbeddingProvider() == "openai" {
		logger.Info("Using OpenAI embedding backend")
		return openaiEmbedding.GetOpenAIEmbeddingClient(config.OpenAIEmbeddingModel, config.OpenAIAPIKey())
	}
	return googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, googleAPIKey)
}
