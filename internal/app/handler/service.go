package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetStats godoc
// @Summary Request statistics
// @Description Per-endpoint counters, monthly totals and uptime
// @Tags Service
// @Security BasicAuth
// @Produce json
// @Success 200 {object} stats.Snapshot
// @Failure 401 {object} map[string]string
// @Router /stats [get]
func (h *Handler) GetStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.registry.Snapshot())
}

// Health godoc
// @Summary Health check
// @Tags Service
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.repo.Ping(pingCtx); err != nil {
		logrus.Errorf("health check failed: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
