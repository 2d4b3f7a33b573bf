package handler

import (
	"api-transferegov/internal/app/filter"
	"api-transferegov/internal/app/repository"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route одна сущность каталога
type Route interface {
	Info() RouteInfo
	Register(router gin.IRoutes, h *Handler)
}

// RouteInfo описание маршрута для документации и миграций индексов
type RouteInfo struct {
	Path        string
	Tag         string
	Description string
	Order       string
	Fields      []filter.Field
	Model       any
	Response    any
}

// Entity списочный эндпоинт над одной таблицей.
// T модель gorm, R форма ответа. Если Map не задан, T и R должны совпадать.
type Entity[T, R any] struct {
	Path        string
	Tag         string
	Description string
	Order       string
	Fields      []filter.Field
	Preload     []string
	Map         func(T) (R, error)
}

func (e Entity[T, R]) Info() RouteInfo {
	return RouteInfo{
		Path:        e.Path,
		Tag:         e.Tag,
		Description: e.Description,
		Order:       e.Order,
		Fields:      e.Fields,
		Model:       new(T),
		Response:    new(R),
	}
}

func (e Entity[T, R]) Register(router gin.IRoutes, h *Handler) {
	handle := e.handler(h, e.mapper())
	router.GET(e.Path, handle)
	router.HEAD(e.Path, handle)
}

func (e Entity[T, R]) mapper() func(T) (R, error) {
	if e.Map != nil {
		return e.Map
	}
	var zero T
	if _, ok := any(zero).(R); !ok {
		panic(fmt.Sprintf("route %s: response type differs from model, Map is required", e.Path))
	}
	return func(row T) (R, error) {
		valid, err := repository.ValidateRow(row)
		return any(valid).(R), err
	}
}

// handler разбирает пагинацию и фильтры, затем отдает страницу
func (e Entity[T, R]) handler(h *Handler, mapFn func(T) (R, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		query := ctx.Request.URL.Query()

		page, size, err := filter.ParsePage(query, h.conf.DefaultPageSize, h.conf.MaxPageSize)
		if err != nil {
			h.errorHandler(ctx, e.Path, err)
			return
		}

		conds, err := filter.Parse(e.Fields, query)
		if err != nil {
			h.errorHandler(ctx, e.Path, err)
			return
		}

		q := repository.NewRetryQuery[T](
			repository.NewGormQuery[T](h.repo.DB(), filter.Compile(conds), e.Order, e.Preload...),
			h.conf.DBRetryAttempts, h.conf.DBRetryDelay,
		)
		result, err := repository.Paginate(ctx.Request.Context(), q, page, size, mapFn)
		if err != nil {
			h.errorHandler(ctx, e.Path, err)
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
