package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Set stores a key-value pair with a TTL. A zero TTL keeps the key forever.
func (r *redisImpl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// SetNX sets the key only if absent. Returns true when this call wrote it.
func (r *redisImpl) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, value, ttl).Result()
}

// Get retrieves a value by key. Returns ErrNotFound when the key is absent.
func (r *redisImpl) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

// Delete removes one or more keys.
func (r *redisImpl) Delete(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

// Exists checks whether a key exists.
func (r *redisImpl) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ping checks that Redis is reachable.
func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *redisImpl) Close() error {
	return r.client.Close()
}

// GetClient returns the underlying go-redis client for advanced operations.
func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
