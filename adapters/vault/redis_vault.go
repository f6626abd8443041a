package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/splitwing/splitwing/core"
	"github.com/splitwing/splitwing/ports"
)

// RedisVault is a Redis implementation of the TokenVault interface, for
// headless clients that share one session across instances
type RedisVault struct {
	client *redis.Client
	key    string
}

// NewRedisVault creates a new Redis vault
func NewRedisVault(client *redis.Client) *RedisVault {
	return &RedisVault{
		client: client,
		key:    "splitwing:" + TokenFileName,
	}
}

var _ ports.TokenVault = (*RedisVault)(nil)

// Load returns the persisted token from Redis
func (v *RedisVault) Load(ctx context.Context) (string, error) {
	val, err := v.client.Get(ctx, v.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", core.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return val, nil
}

// Store writes the token to Redis without expiration; the token's own exp
// claim governs its lifetime
func (v *RedisVault) Store(ctx context.Context, token string) error {
	if err := v.client.Set(ctx, v.key, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Clear deletes the token key; deleting a missing key is not an error
func (v *RedisVault) Clear(ctx context.Context) error {
	if err := v.client.Del(ctx, v.key).Err(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
