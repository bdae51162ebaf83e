package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuotaCounter tracks how many answer requests an account has spent.
type QuotaCounter interface {
	Increment(ctx context.Context, key string) (int, error)
	Get(ctx context.Context, key string) (int, error)
}

// MemoryQuotaCounter is the default counter when Redis is not configured.
type MemoryQuotaCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewMemoryQuotaCounter() *MemoryQuotaCounter {
	return &MemoryQuotaCounter{counts: make(map[string]int)}
}

func (c *MemoryQuotaCounter) Increment(_ context.Context, key string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key]++
	return c.counts[key], nil
}

func (c *MemoryQuotaCounter) Get(_ context.Context, key string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[key], nil
}

type redisQuotaCounter struct {
	client *redis.Client
	prefix string
}

// NewRedisQuotaCounter keeps quota counts in Redis so they survive restarts.
func NewRedisQuotaCounter(client *redis.Client) QuotaCounter {
	if client == nil {
		return nil
	}
	return &redisQuotaCounter{
		client: client,
		prefix: "quota:used:",
	}
}

func (c *redisQuotaCounter) Increment(ctx context.Context, key string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	count, err := c.client.Incr(ctx, c.prefix+normalizeKey(key)).Result()
	return int(count), err
}

func (c *redisQuotaCounter) Get(ctx context.Context, key string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	count, err := c.client.Get(ctx, c.prefix+normalizeKey(key)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
