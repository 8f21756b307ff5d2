package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Broadcast a community alert
// @Description Text every subscriber within radius_km of the incident. Requires API key.
// @Tags Community
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param body body BroadcastRequest true "Radius and optional custom message"
// @Success 200 {object} BroadcastResponse
// @Failure 400 {object} map[string]string "Invalid incident ID, body or radius"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/broadcast [post]
func (h *Handler) broadcastAlert(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "broadcastAlert").WithField("id", id)

	var input BroadcastRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	result, err := h.broadcastService.BroadcastAlert(c.Request.Context(), id, input.RadiusKm, input.Message)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ResultToBroadcastResponse(result))
}

// @Summary List community replies
// @Tags Community
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} CommunityReplyResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/responses [get]
func (h *Handler) listResponses(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listResponses").WithField("id", id)

	replies, err := h.responseService.ListResponses(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCommunityReplies(replies))
}

// @Summary Subscribe to alerts
// @Description Register or move a phone number for alerts around a location.
// @Tags Community
// @Accept json
// @Produce json
// @Param body body SubscriberRequest true "Subscription"
// @Success 201 {object} SubscriberResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /subscribers [post]
func (h *Handler) registerSubscriber(c *gin.Context) {
	var input SubscriberRequest
	log := h.logger.WithField("method", "registerSubscriber")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToSubscriberModel(input)
	if err := h.broadcastService.RegisterSubscriber(c.Request.Context(), model); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSubscriberResponse(model))
}

// @Summary Get a subscriber
// @Tags Community
// @Produce json
// @Security ApiKeyAuth
// @Param phone path string true "Phone number in E.164"
// @Success 200 {object} SubscriberResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Subscriber not found"
// @Router /subscribers/{phone} [get]
func (h *Handler) getSubscriber(c *gin.Context) {
	phone := c.Param("phone")
	log := h.logger.WithField("method", "getSubscriber")

	sub, err := h.broadcastService.GetSubscriber(c.Request.Context(), phone)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSubscriberResponse(sub))
}
