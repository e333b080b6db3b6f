package storage

import (
	"context"
	"errors"
	"time"

	"overcooked-storefront/storefront-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps serialized carts under their session key. Every save
// refreshes the TTL, so only abandoned carts expire.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisCartStore) Save(ctx context.Context, key string, data []byte) error {
	return s.Client.Set(ctx, key, data, s.TTL).Err()
}
