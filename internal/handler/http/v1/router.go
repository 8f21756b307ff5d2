package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the v1 API. Reporting, subscriptions, gateway
// callbacks and health are public; everything else needs an API key.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/incidents", h.createIncident)
	api.GET("/incidents/nearby", h.listNearbyIncidents)
	api.POST("/subscribers", h.registerSubscriber)

	webhooks := api.Group("/webhooks")
	{
		webhooks.POST("/sms", h.inboundSMS)
		webhooks.POST("/ussd", h.ussdCallback)
	}

	api.GET("/system/health", h.healthCheck)

	admin := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	incidents := admin.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/verify", h.verifyIncident)
		incidents.POST("/:id/dispatch", h.dispatchRanger)
		incidents.POST("/:id/transitions", h.transitionIncident)
		incidents.POST("/:id/broadcast", h.broadcastAlert)
		incidents.GET("/:id/responses", h.listResponses)
	}

	rangers := admin.Group("/rangers")
	{
		rangers.POST("", h.createRanger)
		rangers.GET("", h.listRangers)
		rangers.PUT("/:id/location", h.updateRangerLocation)
		rangers.PUT("/:id/status", h.setRangerStatus)
	}

	admin.GET("/subscribers/:phone", h.getSubscriber)
	admin.POST("/hotspots/sync", h.syncHotspots)
}
