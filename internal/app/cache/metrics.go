package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits ответы, отданные из кэша
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transferegov_cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	// CacheMisses запросы, не нашедшие запись
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transferegov_cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)

	// CacheComputes реальные вычисления ответа, по одному на ключ
	CacheComputes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transferegov_cache_computes_total",
			Help: "Total number of response computations",
		},
	)

	// CacheShared запросы, дождавшиеся чужого вычисления
	CacheShared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transferegov_cache_shared_total",
			Help: "Total number of requests served by a concurrent computation",
		},
	)

	// ConditionalRequests ответы 304 Not Modified
	ConditionalRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transferegov_cache_304_responses_total",
			Help: "Total number of 304 Not Modified responses",
		},
	)

	// CacheErrors ошибки вычисления и хранилища
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transferegov_cache_errors_total",
			Help: "Total number of cache errors",
		},
		[]string{"operation"}, // "get", "set", "compute"
	)
)
