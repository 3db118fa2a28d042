package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/pkg/logger_i"
)

// AnswerCache is an optional exact-match cache for chat answers, keyed on the
// question and language. A nil *AnswerCache is valid and means caching is
// disabled; every operation on it is a no-op. Redis faults fail open: the
// pipeline just runs uncached.
type AnswerCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger_i.Logger
}

// GetAnswerCache connects to redis at addr, or returns nil (caching disabled)
// when addr is empty or redis is unreachable.
func GetAnswerCache(ctx context.Context, addr string) *AnswerCache {
	logger := logger_i.NewLogger("AnswerCache")
	if addr == "" {
		logger.Info("REDIS_ADDR not set, answer cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:                  addr,
		ContextTimeoutEnabled: true,
		ReadTimeout:           5 * time.Second,
		WriteTimeout:          5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error("Redis is offline, answer cache disabled", "error", err)
		return nil
	}

	cache := &AnswerCache{
		client: client,
		ttl:    config.AnswerCacheTTL,
		logger: logger,
	}
	go cache.closeOnDone(ctx)
	logger.Info("Answer cache enabled", "addr", addr)
	return cache
}

// NewWithClient wraps an existing redis client; used by tests.
func NewWithClient(client *redis.Client) *AnswerCache {
	return &AnswerCache{
		client: client,
		ttl:    config.AnswerCacheTTL,
		logger: logger_i.NewLogger("AnswerCache"),
	}
}

func (c *AnswerCache) closeOnDone(ctx context.Context) {
	<-ctx.Done()
	c.logger.Info("Closing answer cache")
	if err := c.client.Close(); err != nil {
		c.logger.Error("Error closing redis client", "error", err)
	}
}

func (c *AnswerCache) Get(ctx context.Context, question, language string) (advice.ChatResult, bool) {
	if c == nil {
		return advice.ChatResult{}, false
	}

	raw, err := c.client.Get(ctx, cacheKey(question, language)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Error("Cache lookup failed", "error", err)
		}
		return advice.ChatResult{}, false
	}

	var result advice.ChatResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logger.Error("Corrupt cache entry, ignoring", "error", err)
		return advice.ChatResult{}, false
	}
	return result, true
}

func (c *AnswerCache) Put(ctx context.Context, question, language string, result advice.ChatResult) {
	if c == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Error("Error marshalling cache entry", "error", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(question, language), data, c.ttl).Err(); err != nil {
		c.logger.Error("Cache store failed", "error", err)
	}
}

func cacheKey(question, language string) string {
	sum := sha256.Sum256([]byte(language + "\x00" + question))
	return "chat:" + hex.EncodeToString(sum[:])
}
