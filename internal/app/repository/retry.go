package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// RetryQuery повторяет Count и Fetch при временных ошибках базы
// с экспоненциальной паузой. Отмена контекста не повторяется.
type RetryQuery[T any] struct {
	inner    Query[T]
	attempts int
	delay    time.Duration
}

// NewRetryQuery при attempts <= 1 возвращает исходный запрос
func NewRetryQuery[T any](inner Query[T], attempts int, delay time.Duration) Query[T] {
	if attempts <= 1 {
		return inner
	}
	return &RetryQuery[T]{inner: inner, attempts: attempts, delay: delay}
}

func (q *RetryQuery[T]) Count(ctx context.Context) (int64, error) {
	return retry(ctx, q, "count", func() (int64, error) {
		return q.inner.Count(ctx)
	})
}

func (q *RetryQuery[T]) Fetch(ctx context.Context, offset, limit int) ([]T, error) {
	return retry(ctx, q, "fetch", func() ([]T, error) {
		return q.inner.Fetch(ctx, offset, limit)
	})
}

func (q *RetryQuery[T]) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = q.delay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(q.attempts-1)), ctx)
}

func retry[T, R any](ctx context.Context, q *RetryQuery[T], op string, fn func() (R, error)) (R, error) {
	attempt := 0
	operation := func() (R, error) {
		attempt++
		res, err := fn()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}
	notify := func(err error, next time.Duration) {
		logrus.WithFields(logrus.Fields{
			"op":      op,
			"attempt": attempt,
		}).Warnf("query failed, retrying in %s: %v", next, err)
	}
	return backoff.RetryNotifyWithData(operation, q.policy(ctx), notify)
}
