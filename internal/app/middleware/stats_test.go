package middleware

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pathCollector struct {
	mu    sync.Mutex
	paths []string
}

func (c *pathCollector) Record(path string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func TestTrackRequests(t *testing.T) {
	collector := &pathCollector{}
	router := gin.New()
	router.Use(TrackRequests(collector, []string{"/health"}))
	ok := func(ctx *gin.Context) { ctx.Status(http.StatusOK) }
	router.GET("/convenio", ok)
	router.GET("/health", ok)
	router.GET("/docs/*any", ok)

	serve(router, http.MethodGet, "/convenio?nr_convenio=1", nil)
	serve(router, http.MethodGet, "/convenio?nr_convenio=2", nil)
	serve(router, http.MethodGet, "/health", nil)
	serve(router, http.MethodGet, "/docs/index.html", nil)
	serve(router, http.MethodGet, "/unknown", nil)

	assert.Equal(t, []string{"/convenio", "/convenio"}, collector.paths)
}
