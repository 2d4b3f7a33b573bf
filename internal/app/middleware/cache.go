package middleware

import (
	"api-transferegov/internal/app/cache"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// uncacheable ответ обработчика с кодом, отличным от 200.
// Отдается всем ожидающим этого вычисления, но в кэш не попадает.
type uncacheable struct {
	entry *cache.Entry
}

func (u *uncacheable) Error() string {
	return fmt.Sprintf("response status %d is not cacheable", u.entry.Status)
}

// ResponseCache кэширует успешные GET/HEAD ответы на ttl.
// Одновременные запросы с одним ключом ждут одного вычисления.
// Вычисление отвязано от отмены запроса лидера и ограничено computeTimeout.
// internalMessage уходит клиенту, если обработчик не оставил ответа.
func ResponseCache(c *cache.Cache, ttl, computeTimeout time.Duration, internalMessage string, vary ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		method := ctx.Request.Method
		if method != http.MethodGet && method != http.MethodHead {
			ctx.Next()
			return
		}

		directives := strings.ToLower(ctx.GetHeader("Cache-Control"))
		if strings.Contains(directives, "no-store") {
			setCacheStatus(ctx, CacheBypass)
			ctx.Next()
			return
		}

		// HEAD делит запись с GET
		key := cache.Key(http.MethodGet, ctx.Request.URL.Path, ctx.Request.URL.Query(), ctx.Request.Header, vary...)
		compute := func(parent context.Context) (*cache.Entry, error) {
			computeCtx, cancel := context.WithTimeout(context.WithoutCancel(parent), computeTimeout)
			defer cancel()
			return record(ctx, computeCtx)
		}

		var (
			entry *cache.Entry
			hit   bool
			err   error
		)
		if strings.Contains(directives, "no-cache") {
			entry, err = c.Refresh(ctx.Request.Context(), key, ttl, compute)
		} else {
			entry, hit, err = c.GetOrCompute(ctx.Request.Context(), key, ttl, compute)
		}

		var u *uncacheable
		switch {
		case errors.As(err, &u):
			writeUncached(ctx, u.entry)
		case err != nil:
			logrus.WithField("cache_key", key).Errorf("response computation failed: %v", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": internalMessage})
		default:
			status := CacheMiss
			if hit {
				status = CacheHit
			}
			writeEntry(ctx, entry, status, c.Now())
		}
		ctx.Abort()
	}
}

// record прогоняет оставшуюся цепочку обработчиков в recorder
func record(ctx *gin.Context, computeCtx context.Context) (entry *cache.Entry, err error) {
	original, originalReq := ctx.Writer, ctx.Request
	rec := newRecorder(original)
	ctx.Writer = rec
	ctx.Request = originalReq.WithContext(computeCtx)
	defer func() {
		ctx.Writer, ctx.Request = original, originalReq
		if p := recover(); p != nil {
			err = fmt.Errorf("handler panic: %v", p)
		}
	}()

	ctx.Next()

	entry = &cache.Entry{
		Status: rec.Status(),
		Header: rec.storedHeader(),
		Body:   append([]byte(nil), rec.body.Bytes()...),
	}
	if entry.Status != http.StatusOK {
		return nil, &uncacheable{entry: entry}
	}
	return entry, nil
}

func writeEntry(ctx *gin.Context, entry *cache.Entry, status string, now time.Time) {
	copyHeader(ctx.Writer.Header(), entry.Header)
	setCacheStatus(ctx, status)
	ctx.Header("ETag", entry.ETag)
	ctx.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int64(entry.Remaining(now)/time.Second)))

	if cache.MatchesETag(ctx.GetHeader("If-None-Match"), entry.ETag) {
		cache.ConditionalRequests.Inc()
		ctx.Writer.Header().Del("Content-Type")
		ctx.Status(http.StatusNotModified)
		ctx.Writer.WriteHeaderNow()
		return
	}

	ctx.Status(entry.Status)
	if ctx.Request.Method == http.MethodHead {
		ctx.Writer.WriteHeaderNow()
		return
	}
	_, _ = ctx.Writer.Write(entry.Body)
}

func writeUncached(ctx *gin.Context, entry *cache.Entry) {
	copyHeader(ctx.Writer.Header(), entry.Header)
	setCacheStatus(ctx, CacheMiss)
	ctx.Header("Cache-Control", "no-store")
	ctx.Status(entry.Status)
	if ctx.Request.Method == http.MethodHead {
		ctx.Writer.WriteHeaderNow()
		return
	}
	_, _ = ctx.Writer.Write(entry.Body)
}

func copyHeader(dst, src http.Header) {
	for name, values := range src {
		dst[name] = append([]string(nil), values...)
	}
}
