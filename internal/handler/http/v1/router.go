package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, без токена
	api.GET("/system/health", h.healthCheck)

	adminKey := ""
	if h.cfg != nil {
		adminKey = h.cfg.SessionAdminKey
	}

	// Токен сессии киоска, только с X-Admin-Key
	session := api.Group("/session")
	session.Use(AdminKeyMiddleware(adminKey, h.logger))
	{
		session.PUT("/token", h.setSessionToken)
		session.DELETE("/token", h.clearSessionToken)
	}

	secured := api.Group("")
	secured.Use(TokenMiddleware(h.tokens, adminKey, h.logger))

	// Доска инцидентов
	incidents := secured.Group("/incidents")
	{
		incidents.GET("", h.loadBoard)
		incidents.GET("/board", h.currentBoard)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id/status", h.updateStatus)
		incidents.GET("/:id/history", h.history)
	}

	secured.GET("/stats", h.getStats)

	fitbit := secured.Group("/fitbit")
	{
		fitbit.GET("/connect", h.fitbitConnect)
		fitbit.GET("/status", h.fitbitStatus)
		fitbit.GET("/data", h.fitbitData)
	}

	media := secured.Group("/media")
	{
		media.POST("", h.uploadMedia)
		media.DELETE("", h.deleteMedia)
	}

	secured.GET("/me", h.me)

	secured.GET("/notifications/ws", h.notifications)
}
