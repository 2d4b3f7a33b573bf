package cache

import (
	"api-transferegov/internal/app/redis"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ResponseBackend то, что RedisStore использует из клиента Redis
type ResponseBackend interface {
	SaveResponse(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	GetResponse(ctx context.Context, key string) ([]byte, error)
}

// RedisStore общий для всех процессов кэш. Записи хранятся в JSON,
// срок жизни задается TTL ключа в Redis и дополнительно проверяется при чтении.
type RedisStore struct {
	backend ResponseBackend
	now     func() time.Time
}

func NewRedisStore(backend ResponseBackend) *RedisStore {
	return &RedisStore{backend: backend, now: time.Now}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, error) {
	data, err := s.backend.GetResponse(ctx, key)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode cache entry: %w", err)
	}
	if entry.IsExpired(s.now()) {
		return nil, ErrCacheMiss
	}
	return &entry, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, entry *Entry) error {
	ttl := entry.Remaining(s.now())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := s.backend.SaveResponse(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
