package prefs

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"installment-calc/pkg/constants"
)

const themeKey = "installment-calc:display:theme"

// RedisStore persists the display preference in Redis so it survives
// restarts of the API process.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a preference store backed by the Redis instance at addr.
func NewRedisStore(addr string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{client: rdb}
}

// Theme returns the stored theme, or the default when none has been set yet.
func (s *RedisStore) Theme(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, themeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return constants.DefaultTheme, nil
		}
		return "", err
	}
	return val, nil
}

// SetTheme stores the theme with no expiration.
func (s *RedisStore) SetTheme(ctx context.Context, theme string) error {
	return s.client.Set(ctx, themeKey, theme, 0).Err()
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
