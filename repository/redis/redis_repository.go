package redis

import (
	"context"
	"time"

	redisclient "github.com/rentconnect/rentconnect-api/cmd/redis"
)

// Repository caches the per-user bearer token keyed by email. It is
// write-through from login: the cache only ever holds what the users row
// holds, so authorization reads stay equivalent to a DB lookup. All methods
// degrade to no-ops when Redis is not connected.
type Repository interface {
	GetToken(ctx context.Context, email string) (string, error)
	SetToken(ctx context.Context, email, token string, ttl time.Duration) error
	DeleteToken(ctx context.Context, email string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

const tokenKeyPrefix = "token:"

// GetToken returns the cached token for the email, or "" on miss.
func (r *redis) GetToken(ctx context.Context, email string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, tokenKeyPrefix+email).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redis) SetToken(ctx context.Context, email, token string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, tokenKeyPrefix+email, token, ttl).Err()
}

func (r *redis) DeleteToken(ctx context.Context, email string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, tokenKeyPrefix+email).Err()
}
