package cache

import (
	"context"
	"errors"
)

// ErrCacheMiss записи нет или она истекла
var ErrCacheMiss = errors.New("cache miss")

// Store хранилище записей. Get возвращает ErrCacheMiss для отсутствующих и истекших записей.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry *Entry) error
}
