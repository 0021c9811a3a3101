// Package rendercache stores rendered reader responses in Redis.
//
// Entries are grouped by project slug. Every project has a generation counter
// that is part of each entry key; revalidating a project bumps the counter so
// all of its old entries become unreachable and age out through their TTL.
package rendercache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "mydocs:render:"

// Cache is a Redis-backed render cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache from an existing Redis client.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Connect parses redisURL, pings the server and returns a ready cache.
func Connect(ctx context.Context, redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return New(client, ttl), nil
}

func genKey(projectSlug string) string {
	return keyPrefix + "gen:" + projectSlug
}

func entryKey(projectSlug string, gen int64, key string) string {
	return fmt.Sprintf("%s%s:%d:%s", keyPrefix, projectSlug, gen, key)
}

func (c *Cache) generation(ctx context.Context, projectSlug string) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(projectSlug)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read generation: %w", err)
	}
	return gen, nil
}

// Get returns the cached value for key under the project. ok is false on a miss.
func (c *Cache) Get(ctx context.Context, projectSlug, key string) (value []byte, ok bool, err error) {
	gen, err := c.generation(ctx, projectSlug)
	if err != nil {
		return nil, false, err
	}

	value, err = c.client.Get(ctx, entryKey(projectSlug, gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get render cache: %w", err)
	}

	return value, true, nil
}

// Set stores value for key under the project's current generation.
func (c *Cache) Set(ctx context.Context, projectSlug, key string, value []byte) error {
	gen, err := c.generation(ctx, projectSlug)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, entryKey(projectSlug, gen, key), value, c.ttl).Err(); err != nil {
		return fmt.Errorf("set render cache: %w", err)
	}

	return nil
}

// RevalidateProject drops every cached entry of the project.
func (c *Cache) RevalidateProject(ctx context.Context, projectSlug string) error {
	if err := c.client.Incr(ctx, genKey(projectSlug)).Err(); err != nil {
		return fmt.Errorf("revalidate project %s: %w", projectSlug, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Nop is a cache that never stores anything. It is used when no Redis URL
// is configured.
type Nop struct{}

func (Nop) Get(context.Context, string, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, string, []byte) error         { return nil }
func (Nop) RevalidateProject(context.Context, string) error           { return nil }
