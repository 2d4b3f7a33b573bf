package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatsAuth(t *testing.T) {
	router := gin.New()
	router.GET("/stats", StatsAuth("admin", "secret"), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name     string
		user     string
		password string
		noAuth   bool
		want     int
	}{
		{name: "valid", user: "admin", password: "secret", want: http.StatusOK},
		{name: "wrong password", user: "admin", password: "nope", want: http.StatusUnauthorized},
		{name: "wrong user", user: "root", password: "secret", want: http.StatusUnauthorized},
		{name: "missing", noAuth: true, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.user, tt.password)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
			}
		})
	}
}
