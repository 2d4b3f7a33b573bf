package handler

import (
	"api-transferegov/internal/app/cache"
	"api-transferegov/internal/app/config"
	"api-transferegov/internal/app/filter"
	"api-transferegov/internal/app/middleware"
	"api-transferegov/internal/app/repository"
	"api-transferegov/internal/app/stats"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	repo     *repository.Repository
	conf     *config.Config
	registry *stats.Registry
}

func NewHandler(repo *repository.Repository, conf *config.Config, registry *stats.Registry) *Handler {
	return &Handler{
		repo:     repo,
		conf:     conf,
		registry: registry,
	}
}

// RegisterHandlers регистрирует все обработчики
func RegisterHandlers(router *gin.Engine, conf *config.Config, repo *repository.Repository, c *cache.Cache, collector stats.Collector, registry *stats.Registry) {
	h := NewHandler(repo, conf, registry)

	router.Use(middleware.TrackRequests(collector, conf.StatsExcludedPaths))

	// Служебные маршруты, без кэша
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/docs/index.html")
	})
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.Health)
	if conf.StatsUser != "" {
		router.GET("/stats", middleware.StatsAuth(conf.StatsUser, conf.StatsPassword), h.GetStats)
	} else {
		logrus.Warn("StatsUser is empty, /stats is disabled")
	}

	// Списочные эндпоинты за кэшем ответов
	api := router.Group("")
	api.Use(middleware.ResponseCache(c, conf.CacheTTL, conf.CacheComputeTimeout, conf.ErrorMessageInternal, conf.CacheVary...))
	for _, route := range Routes() {
		route.Register(api, h)
	}
}

// errorHandler превращает ошибку в один из фиксированных ответов.
// Причина 500 пишется в лог и клиенту не отдается.
func (h *Handler) errorHandler(ctx *gin.Context, path string, err error) {
	switch {
	case errors.Is(err, filter.ErrNoParams):
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": h.conf.ErrorMessageNoParams})
	case errors.Is(err, filter.ErrInvalidParam):
		logrus.WithField("path", path).Debugf("invalid request: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": h.conf.ErrorMessageInvalidParams})
	default:
		logrus.WithField("path", path).Errorf("request failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": h.conf.ErrorMessageInternal})
	}
}
