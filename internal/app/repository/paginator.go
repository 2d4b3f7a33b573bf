package repository

import (
	"api-transferegov/internal/app/ds"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidRow строка из базы не соответствует форме ответа
var ErrInvalidRow = errors.New("row does not match response shape")

// Paginate выполняет ровно один Count и один Fetch и собирает страницу.
// Любая ошибка базы или преобразования строки возвращается целиком, частичных страниц нет.
func Paginate[T, R any](ctx context.Context, q Query[T], page, size int, mapFn func(T) (R, error)) (*ds.Page[R], error) {
	if page < 1 || size < 1 {
		return nil, fmt.Errorf("invalid page %d or size %d", page, size)
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}

	result := &ds.Page[R]{
		Data:       make([]R, 0),
		TotalPages: ds.TotalPages(total, size),
		TotalItems: total,
		PageNumber: page,
		PageSize:   size,
	}

	// Смещение не помещается в int, такой страницы заведомо нет
	if page-1 > math.MaxInt/size {
		return result, nil
	}

	rows, err := q.Fetch(ctx, (page-1)*size, size)
	if err != nil {
		return nil, fmt.Errorf("fetch rows: %w", err)
	}

	result.Data = make([]R, 0, len(rows))
	for i, row := range rows {
		item, err := mapFn(row)
		if err != nil {
			return nil, fmt.Errorf("map row %d: %w", i, err)
		}
		result.Data = append(result.Data, item)
	}

	return result, nil
}

// ValidateRow проверяет строку по тегам binding и возвращает ее без изменений
func ValidateRow[T any](row T) (T, error) {
	if err := binding.Validator.ValidateStruct(row); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return row, fmt.Errorf("%w: field %s failed %q", ErrInvalidRow, verrs[0].Field(), verrs[0].Tag())
		}
		return row, fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}
	return row, nil
}

// Validated сначала преобразует строку, потом проверяет результат
func Validated[T, R any](fn func(T) R) func(T) (R, error) {
	return func(row T) (R, error) {
		return ValidateRow(fn(row))
	}
}
