package cache

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ComputeFunc строит ответ при промахе. Ошибка не кэшируется.
type ComputeFunc func(ctx context.Context) (*Entry, error)

// Cache кэш ответов с защитой от лавины: для одного ключа одновременно
// выполняется не больше одного вычисления, остальные ждут его результата.
// Разные ключи друг друга не блокируют.
type Cache struct {
	store Store
	group singleflight.Group
	now   func() time.Time
}

type Option func(*Cache)

// WithClock подменяет часы, используется в тестах
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(store Store, opts ...Option) *Cache {
	c := &Cache{store: store, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now текущее время по часам кэша
func (c *Cache) Now() time.Time {
	return c.now()
}

// GetOrCompute отдает свежую запись или вычисляет ее один раз на ключ.
// hit сообщает, что вычисление не понадобилось.
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, fn ComputeFunc) (entry *Entry, hit bool, err error) {
	if entry, ok := c.lookup(ctx, key); ok {
		CacheHits.Inc()
		return entry, true, nil
	}
	CacheMisses.Inc()
	return c.flight(ctx, key, ttl, fn, true)
}

// Refresh вычисляет запись заново, минуя чтение из хранилища
func (c *Cache) Refresh(ctx context.Context, key string, ttl time.Duration, fn ComputeFunc) (*Entry, error) {
	entry, _, err := c.flight(ctx, key, ttl, fn, false)
	return entry, err
}

func (c *Cache) flight(ctx context.Context, key string, ttl time.Duration, fn ComputeFunc, recheck bool) (*Entry, bool, error) {
	hit := false
	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		// Результат нужен всем ожидающим, отмена запроса лидера его не прерывает
		ctx := context.WithoutCancel(ctx)

		// Пока ждали очередь, запись мог положить предыдущий полет
		if recheck {
			if entry, ok := c.lookup(ctx, key); ok {
				hit = true
				return entry, nil
			}
		}

		CacheComputes.Inc()
		entry, err := fn(ctx)
		if err != nil {
			CacheErrors.WithLabelValues("compute").Inc()
			return nil, err
		}

		entry.Key = key
		entry.CreatedAt = c.now()
		entry.TTL = ttl
		if entry.ETag == "" {
			entry.ETag = ETag(entry.Body)
		}

		if err := c.store.Set(ctx, key, entry); err != nil {
			CacheErrors.WithLabelValues("set").Inc()
			logrus.WithField("cache_key", key).Warnf("failed to store cache entry: %v", err)
		}
		return entry, nil
	})
	if shared {
		CacheShared.Inc()
	}
	if err != nil {
		return nil, false, err
	}
	return v.(*Entry), hit, nil
}

func (c *Cache) lookup(ctx context.Context, key string) (*Entry, bool) {
	entry, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			CacheErrors.WithLabelValues("get").Inc()
			logrus.WithField("cache_key", key).Warnf("cache lookup failed, computing: %v", err)
		}
		return nil, false
	}
	if entry.IsExpired(c.now()) {
		return nil, false
	}
	return entry, true
}
