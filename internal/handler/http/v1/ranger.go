package v1

import (
	"net/http"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary Register a ranger
// @Description Add a ranger to the roster. Status defaults to available. Requires API key.
// @Tags Rangers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param ranger body CreateRangerRequest true "Ranger"
// @Success 201 {object} RangerResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rangers [post]
func (h *Handler) createRanger(c *gin.Context) {
	var input CreateRangerRequest
	log := h.logger.WithField("method", "createRanger")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToRangerModel(input)
	if err := h.rangerService.RegisterRanger(c.Request.Context(), model); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToRangerResponse(model))
}

// @Summary List rangers
// @Tags Rangers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RangerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rangers [get]
func (h *Handler) listRangers(c *gin.Context) {
	log := h.logger.WithField("method", "listRangers")

	rangers, err := h.rangerService.ListRangers(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRangerResponses(rangers))
}

// @Summary Update ranger position
// @Description Record a ranger's latest position, used for the next dispatch. Requires API key.
// @Tags Rangers
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Ranger ID"
// @Param body body LocationRequest true "Position"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ranger ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Ranger not found"
// @Router /rangers/{id}/location [put]
func (h *Handler) updateRangerLocation(c *gin.Context) {
	id, ok := parseID(c, "ranger")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateRangerLocation").WithField("id", id)

	var input LocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.rangerService.UpdateRangerLocation(c.Request.Context(), id, pointFrom(input.Latitude, input.Longitude)); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set ranger duty status
// @Description Toggle between available, on_duty and off_duty. Refused while the ranger is attending an incident. Requires API key.
// @Tags Rangers
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Ranger ID"
// @Param body body RangerStatusRequest true "Duty status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ranger ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Ranger not found"
// @Failure 409 {object} map[string]string "Ranger is attending an incident"
// @Router /rangers/{id}/status [put]
func (h *Handler) setRangerStatus(c *gin.Context) {
	id, ok := parseID(c, "ranger")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setRangerStatus").WithField("id", id)

	var input RangerStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.rangerService.SetRangerStatus(c.Request.Context(), id, models.RangerStatus(input.Status)); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
