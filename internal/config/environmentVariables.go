package config

import (
	"os"
	"strconv"
	"time"
)

const (
	TRACE_ID_KEY = "traceId"

	RATE_LIMIT_PER_SECOND       = 5
	BURST_RATE_LIMIT_PER_SECOND = 10

	// 384 matches the multilingual MiniLM family the knowledge base was
	// originally embedded with; both embedding backends are pinned to it.
	EmbeddingOutputDimensionality int32 = 384

	CollectionPrefix = "startup_advisor"
	CollectionName   = CollectionPrefix + "_kb"

	// Retrieval parameters.
	SearchLimit  = 5
	ChunkSize    = 500
	ChunkOverlap = 50

	GeminiModelName      = "gemini-2.5-flash"
	GoogleEmbeddingModel = "gemini-embedding-001"
	OpenAIEmbeddingModel = "text-embedding-3-small"

	// Server timeouts.
	ReadTimeout            = 10 * time.Second
	WriteTimeout           = 120 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	// Upper bound for one classify -> search -> generate pass.
	ChatRequestTimeout = 60 * time.Second

	ServerListenAddr = ":8000"

	// Qdrant defaults, overridable through QDRANT_HOST / QDRANT_PORT.
	QdrantHost     = "localhost"
	QdrantGrpcPort = 6334
	QdrantPoolSize = 2

	// Answer cache.
	AnswerCacheTTL = 24 * time.Hour

	MaxUploadSize = 32 << 20
)

const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// IsSupportedLanguage reports whether the request language is one of the two
// languages the prompt templates exist for.
func IsSupportedLanguage(lang string) bool {
	return lang == LangEnglish || lang == LangArabic
}

func GoogleAPIKey() string {
	return os.Getenv("GOOGLE_API_KEY")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// EmbeddingProvider selects the embedding backend: "google" (default) or
// "openai".
func EmbeddingProvider() string {
	if p := os.Getenv("EMBEDDING_PROVIDER"); p != "" {
		return p
	}
	return "google"
}

func QdrantAddress() (string, int) {
	host := os.Getenv("QDRANT_HOST")
	if host == "" {
		host = QdrantHost
	}
	port, err := strconv.Atoi(os.Getenv("QDRANT_PORT"))
	if err != nil {
		port = QdrantGrpcPort
	}
	return host, port
}

func QdrantAPIKey() string {
	return os.Getenv("QDRANT_API_KEY")
}

func QdrantUseTLS() bool {
	return os.Getenv("QDRANT_USE_TLS") == "true"
}

// RedisAddr returns the answer-cache address, empty when caching is disabled.
func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

func DataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

func IngestOnStartup() bool {
	raw := os.Getenv("INGEST_ON_STARTUP")
	return raw == "" || raw == "true"
}

func ListenAddr() string {
	if port := os.Getenv("APP_PORT"); port != "" {
		return ":" + port
	}
	return ServerListenAddr
}
