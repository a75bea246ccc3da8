package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Маршруты для инцидентов
	incidents := protected.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.DELETE("", h.clearNotifications)
		notifications.GET("/toast", h.getToast)
		notifications.DELETE("/toast", h.hideToast)
		notifications.GET("/settings", h.getAlertSettings)
		notifications.PUT("/settings", h.updateAlertSettings)
		notifications.GET("/stats", h.getStats)
		notifications.DELETE("/:id", h.dismissNotification)
	}

	loc := protected.Group("/location")
	{
		loc.GET("", h.getLocation)
		loc.PUT("", h.updateLocation)
		loc.POST("/error", h.reportLocationError)
	}

	mapGroup := protected.Group("/map")
	{
		mapGroup.GET("", h.getMap)
		mapGroup.PUT("/mode", h.setMapMode)
		mapGroup.PUT("/filter", h.setMapFilter)
	}

	session := protected.Group("/session")
	{
		session.GET("", h.sessionStatus)
		session.POST("/login", h.login)
		session.POST("/logout", h.logout)
	}

	protected.GET("/trends", h.getTrends)
}
