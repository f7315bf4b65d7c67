package v1

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rescue_dashboard/internal/auth"
	"github.com/sirupsen/logrus"
)

const (
	tokenContextKey = "bearer_token"
	adminKeyHeader  = "X-Admin-Key"
)

// hasAdminKey проверяет заголовок X-Admin-Key; пустой adminKey выключает проверку целиком
func hasAdminKey(c *gin.Context, adminKey string) bool {
	if adminKey == "" {
		return false
	}
	provided := c.GetHeader(adminKeyHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) == 1
}

// AdminKeyMiddleware - middleware для маршрутов управления токеном сессии
func AdminKeyMiddleware(adminKey string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(adminKeyHeader) == "" {
			log.Warn("Admin key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin key required"})
			return
		}

		if !hasAdminKey(c, adminKey) {
			log.Warn("Invalid admin key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin key"})
			return
		}

		c.Next()
	}
}

// TokenMiddleware - middleware, извлекающий bearer-токен из заголовка Authorization.
// Токен сессии из хранилища подставляется только в запросы с верным X-Admin-Key.
// Отсутствие токена не прерывает запрос: решение принимает сервис.
func TokenMiddleware(tokens auth.TokenStore, adminKey string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if token == "" && tokens != nil && hasAdminKey(c, adminKey) {
			stored, err := tokens.Get(c.Request.Context())
			switch {
			case err == nil:
				token = stored
			case errors.Is(err, auth.ErrMissingToken):
			default:
				log.WithError(err).Warn("Failed to read session token")
			}
		}

		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// tokenFrom возвращает токен, положенный TokenMiddleware
func tokenFrom(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}
