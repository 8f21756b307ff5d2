package v1

import (
	"errors"
	"net/http"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/service"
	"github.com/PreciousMuemi/forest-link/internal/ussd"
	"github.com/gin-gonic/gin"
)

const ussdUnavailable = "END Service is temporarily unavailable. Please try again later."

// @Summary Inbound SMS callback
// @Description Record a community reply sent by SMS. Replies that match no incident are acknowledged and ignored.
// @Tags Webhooks
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body InboundSMSRequest true "Inbound message"
// @Success 200 {object} CommunityReplyResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /webhooks/sms [post]
func (h *Handler) inboundSMS(c *gin.Context) {
	var input InboundSMSRequest
	log := h.logger.WithField("method", "inboundSMS")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind inbound SMS")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.responseService.HandleInbound(c.Request.Context(), models.InboundMessage{
		From:    input.From,
		Body:    input.Body,
		Channel: models.ChannelSMS,
	})
	if errors.Is(err, service.ErrNoTargetIncident) {
		log.Info("Inbound SMS matched no incident")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCommunityReply(reply))
}

// @Summary USSD gateway callback
// @Description Advance a USSD session. The reply starts with CON to continue or END to close.
// @Tags Webhooks
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param sessionId formData string true "Gateway session ID"
// @Param serviceCode formData string false "Dialled code"
// @Param phoneNumber formData string true "Caller"
// @Param text formData string false "Inputs so far, joined by *"
// @Success 200 {string} string "CON or END reply"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /webhooks/ussd [post]
func (h *Handler) ussdCallback(c *gin.Context) {
	var input USSDRequest
	log := h.logger.WithField("method", "ussdCallback")

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.ussdMenu.Handle(c.Request.Context(), ussd.Request{
		SessionID:   input.SessionID,
		ServiceCode: input.ServiceCode,
		PhoneNumber: input.PhoneNumber,
		Text:        input.Text,
	})
	if errors.Is(err, ussd.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		// The gateway shows whatever we answer, so the caller still gets a clean END.
		log.WithError(err).WithField("session_id", input.SessionID).Error("USSD request failed")
		c.String(http.StatusOK, ussdUnavailable)
		return
	}
	c.String(http.StatusOK, reply)
}
