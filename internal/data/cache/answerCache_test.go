package cache_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/startup-advisor/backend/internal/data/cache"
	"github.com/startup-advisor/backend/internal/domain/advice"
)

func testCache(t *testing.T) (*cache.AnswerCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewWithClient(client), mr
}

func TestAnswerCache_RoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	stored := advice.ChatResult{
		Answer:         "talk to customers",
		Sources:        []string{"lean.md"},
		ContextUsed:    3,
		Success:        true,
		DetectedStages: []string{"01_Ideation_Stage"},
	}
	c.Put(ctx, "how do I validate?", "en", stored)

	got, found := c.Get(ctx, "how do I validate?", "en")
	if !found {
		t.Fatal("expected a cache hit")
	}
	if !reflect.DeepEqual(got, stored) {
		t.Errorf("got %+v, want %+v", got, stored)
	}
}

func TestAnswerCache_KeyIncludesLanguage(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.Put(ctx, "how do I validate?", "en", advice.ChatResult{Answer: "english answer", Success: true})

	if _, found := c.Get(ctx, "how do I validate?", "ar"); found {
		t.Error("different language must not share a cache entry")
	}
}

func TestAnswerCache_Miss(t *testing.T) {
	c, _ := testCache(t)

	if _, found := c.Get(context.Background(), "never asked", "en"); found {
		t.Error("expected a miss for an unknown question")
	}
}

func TestAnswerCache_CorruptEntryIgnored(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	c.Put(ctx, "q", "en", advice.ChatResult{Answer: "a", Success: true})
	for _, key := range mr.Keys() {
		mr.Set(key, "{not json")
	}

	if _, found := c.Get(ctx, "q", "en"); found {
		t.Error("corrupt entries must read as a miss")
	}
}

func TestAnswerCache_NilIsDisabled(t *testing.T) {
	var c *cache.AnswerCache

	c.Put(context.Background(), "q", "en", advice.ChatResult{Answer: "a"})
	if _, found := c.Get(context.Background(), "q", "en"); found {
		t.Error("nil cache must always miss")
	}
}
