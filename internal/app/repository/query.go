package repository

import (
	"context"

	"gorm.io/gorm"
)

// Query источник строк для пагинатора: сначала Count, потом Fetch окна.
// Оба вызова идут отдельными запросами без общего снимка, поэтому при
// внешней записи между ними total_items и окно могут разойтись.
type Query[T any] interface {
	Count(ctx context.Context) (int64, error)
	Fetch(ctx context.Context, offset, limit int) ([]T, error)
}

// GormQuery выполняет Query поверх gorm. Scope это скомпилированные фильтры,
// order обязателен для стабильных страниц.
type GormQuery[T any] struct {
	db       *gorm.DB
	scope    func(*gorm.DB) *gorm.DB
	order    string
	preloads []string
}

func NewGormQuery[T any](db *gorm.DB, scope func(*gorm.DB) *gorm.DB, order string, preloads ...string) *GormQuery[T] {
	if scope == nil {
		scope = func(tx *gorm.DB) *gorm.DB { return tx }
	}
	return &GormQuery[T]{
		db:       db,
		scope:    scope,
		order:    order,
		preloads: preloads,
	}
}

// Count считает строки под фильтром, без сортировки и связей
func (q *GormQuery[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	err := q.db.WithContext(ctx).Model(new(T)).Scopes(q.scope).Count(&total).Error
	return total, err
}

// Fetch загружает окно строк вместе со связями
func (q *GormQuery[T]) Fetch(ctx context.Context, offset, limit int) ([]T, error) {
	tx := q.db.WithContext(ctx).Model(new(T)).Scopes(q.scope)
	if q.order != "" {
		tx = tx.Order(q.order)
	}
	for _, p := range q.preloads {
		tx = tx.Preload(p)
	}

	rows := make([]T, 0, limit)
	if err := tx.Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
