package redis

import (
	"context"
	"errors"
	"time"
)

// Префикс ключей кэша ответов
const responsePrefix = "response:cache:"

// ErrNotFound ключ отсутствует или истек
var ErrNotFound = errors.New("redis: key not found")

// SaveResponse сохраняет сериализованный ответ с TTL
func (c *Client) SaveResponse(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.Set(ctx, responsePrefix+key, payload, ttl)
}

// GetResponse получает сериализованный ответ
func (c *Client) GetResponse(ctx context.Context, key string) ([]byte, error) {
	return c.GetBytes(ctx, responsePrefix+key)
}
