package middleware

import (
	"github.com/gin-gonic/gin"
)

// Значения заголовка X-Cache
const (
	CacheHit    = "HIT"
	CacheMiss   = "MISS"
	CacheBypass = "BYPASS"
)

const cacheStatusKey = "cache_status"

func setCacheStatus(c *gin.Context, status string) {
	c.Set(cacheStatusKey, status)
	c.Header("X-Cache", status)
}

// GetCacheStatus возвращает, как кэш обработал запрос
func GetCacheStatus(c *gin.Context) (string, bool) {
	status, exists := c.Get(cacheStatusKey)
	if !exists {
		return "", false
	}
	return status.(string), true
}
