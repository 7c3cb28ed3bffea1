package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"smartmail/internal/model"
)

// ClassifyCache memoizes classifications by prompt hash. The classifier is
// deterministic-leaning (temperature 0.1), so repeated prompts can skip the
// upstream call for a short window.
type ClassifyCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewClassifyCache(rdb *redis.Client, ttl time.Duration) *ClassifyCache {
	return &ClassifyCache{rdb: rdb, ttl: ttl}
}

func (c *ClassifyCache) Get(ctx context.Context, prompt string) (model.Classification, bool) {
	val, err := c.rdb.Get(ctx, classifyKey(prompt)).Result()
	if err != nil {
		// Redis 挂了？fail open: miss, let the model decide
		return "", false
	}
	switch model.Classification(val) {
	case model.ClassificationSales, model.ClassificationFollowup:
		return model.Classification(val), true
	}
	return "", false
}

func (c *ClassifyCache) Set(ctx context.Context, prompt string, classification model.Classification) {
	_ = c.rdb.Set(ctx, classifyKey(prompt), string(classification), c.ttl).Err()
}

func classifyKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "classify:" + hex.EncodeToString(sum[:])
}
