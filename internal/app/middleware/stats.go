package middleware

import (
	"api-transferegov/internal/app/stats"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TrackRequests учитывает время каждого запроса по шаблону маршрута.
// Неизвестные маршруты и пути из excluded не считаются.
func TrackRequests(collector stats.Collector, excluded []string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(excluded))
	for _, path := range excluded {
		skip[path] = struct{}{}
	}

	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		elapsed := time.Since(start)

		path := ctx.FullPath()
		cacheStatus, _ := GetCacheStatus(ctx)
		logrus.WithFields(logrus.Fields{
			"method":   ctx.Request.Method,
			"path":     ctx.Request.URL.Path,
			"status":   ctx.Writer.Status(),
			"duration": elapsed.String(),
			"cache":    cacheStatus,
		}).Debug("request served")

		if path == "" {
			return
		}
		if _, ok := skip[path]; ok {
			return
		}
		if strings.HasPrefix(path, "/docs/") {
			return
		}
		collector.Record(path, elapsed)
	}
}
