package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsAuth закрывает страницу статистики basic-авторизацией
func StatsAuth(user, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		login, pass, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="stats"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Credenciais ausentes."})
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(login), []byte(user)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		if !userOK || !passOK {
			logrus.Warnf("stats access denied for %q", login)
			c.Header("WWW-Authenticate", `Basic realm="stats"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Credenciais inválidas."})
			return
		}

		c.Next()
	}
}
