package pkg

import (
	"api-transferegov/internal/app/cache"
	"api-transferegov/internal/app/config"
	"api-transferegov/internal/app/handler"
	"api-transferegov/internal/app/repository"
	"api-transferegov/internal/app/stats"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Repository *repository.Repository
	Cache      *cache.Cache
	Registry   *stats.Registry
	Collector  stats.Collector
	Archiver   *stats.Archiver
}

func NewApp(c *config.Config, r *gin.Engine, repo *repository.Repository) (*Application, error) {
	store, err := newCacheStore(c, repo)
	if err != nil {
		return nil, err
	}

	registry := stats.NewRegistry()
	app := &Application{
		Config:     c,
		Router:     r,
		Repository: repo,
		Cache:      cache.New(store),
		Registry:   registry,
		Collector:  stats.Multi{registry, stats.NewPrometheusCollector(prometheus.DefaultRegisterer)},
	}

	// Архив месячной статистики только при настроенном MinIO
	if client := repo.GetMinIOClient(); client != nil {
		app.Archiver = stats.NewArchiver(client, c.MinIOBucket, registry)
	}

	handler.RegisterHandlers(r, c, repo, app.Cache, app.Collector, registry)
	return app, nil
}

// newCacheStore выбирает хранилище кэша. Без Redis откатываемся на память.
func newCacheStore(c *config.Config, repo *repository.Repository) (cache.Store, error) {
	if c.CacheBackend == config.CacheBackendRedis {
		if client := repo.GetRedisClient(); client != nil {
			logrus.Info("response cache: redis")
			return cache.NewRedisStore(client), nil
		}
		logrus.Warn("Redis is unavailable, response cache falls back to memory")
	}

	capacity := c.CacheCapacity
	if capacity < 1 {
		capacity = 10000
	}
	store, err := cache.NewMemoryStore(capacity)
	if err != nil {
		return nil, fmt.Errorf("create memory cache: %w", err)
	}
	logrus.Infof("response cache: memory, capacity %d", capacity)
	return store, nil
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats.RunMinuteReset(ctx, a.Registry, time.Minute)
	}()

	if a.Archiver != nil {
		restoreCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := a.Archiver.Restore(restoreCtx); err != nil {
			logrus.Warnf("failed to restore monthly stats, archiving paused until retry succeeds: %v", err)
		}
		cancel()

		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Archiver.Run(ctx, a.Config.StatsArchiveInterval)
		}()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort),
		Handler:           a.Router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	wg.Wait()
	a.Repository.Close()
	logrus.Info("Server down")
}
