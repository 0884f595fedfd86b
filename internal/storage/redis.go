package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisProvider keeps each collection as one encoded value in redis. Useful
// when several storefront instances should see the same records.
type RedisProvider struct {
	client *redis.Client
}

// NewRedisProvider wraps an existing redis client.
func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{client: client}
}

// Load fetches and decodes a collection. Missing keys and undecodable values
// both surface as ErrNotFound.
func (p *RedisProvider) Load(ctx context.Context, c Collection, into any) error {
	data, err := p.client.Get(ctx, string(c)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read collection %s: %w", c, err)
	}
	if err := Decode(data, into); err != nil {
		return ErrNotFound
	}
	return nil
}

// Save encodes and stores the collection with no expiry.
func (p *RedisProvider) Save(ctx context.Context, c Collection, value any) error {
	data, err := Encode(value)
	if err != nil {
		return err
	}
	if err := p.client.Set(ctx, string(c), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c, err)
	}
	return nil
}

// Reset deletes every collection key.
func (p *RedisProvider) Reset(ctx context.Context) error {
	keys := make([]string, 0, len(Collections))
	for _, c := range Collections {
		keys = append(keys, string(c))
	}
	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset collections: %w", err)
	}
	return nil
}

// Ping proxies to the redis client.
func (p *RedisProvider) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis unavailable: %w", err)
	}
	return nil
}
