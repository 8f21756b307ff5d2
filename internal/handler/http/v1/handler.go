package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/config"
	"github.com/PreciousMuemi/forest-link/internal/dispatch"
	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/lifecycle"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/PreciousMuemi/forest-link/internal/service"
	"github.com/PreciousMuemi/forest-link/internal/ussd"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// USSDMenu answers USSD gateway callbacks; *ussd.Menu in production.
type USSDMenu interface {
	Handle(ctx context.Context, req ussd.Request) (string, error)
}

// Services groups what the handlers call into.
type Services struct {
	Incidents  service.IncidentService
	Rangers    service.RangerService
	Broadcasts service.BroadcastService
	Responses  service.ResponseService
	Hotspots   service.HotspotService
	USSD       USSDMenu
}

type Handler struct {
	incidentService  service.IncidentService
	rangerService    service.RangerService
	broadcastService service.BroadcastService
	responseService  service.ResponseService
	hotspotService   service.HotspotService
	ussdMenu         USSDMenu
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:  services.Incidents,
		rangerService:    services.Rangers,
		broadcastService: services.Broadcasts,
		responseService:  services.Responses,
		hotspotService:   services.Hotspots,
		ussdMenu:         services.USSD,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// writeError maps domain errors to HTTP statuses. Only unexpected errors are
// logged here at error level; their text never reaches the client.
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, geo.ErrInvalidCoordinate),
		errors.Is(err, broadcast.ErrInvalidRadius):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, lifecycle.ErrRangerNotAssigned):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNoTargetIncident):
		c.JSON(http.StatusNotFound, gin.H{"error": "no incident to attach response to"})
	case errors.Is(err, dispatch.ErrNoRangerAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "no ranger available", "reason": "no_ranger_available"})
	case errors.Is(err, repository.ErrAssignmentConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "incident is already assigned or closed", "reason": "already_assigned"})
	case errors.Is(err, repository.ErrStatusConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "incident status changed concurrently", "reason": "status_conflict"})
	case errors.Is(err, repository.ErrRangerBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "ranger is attending an incident", "reason": "ranger_busy"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindJSON decodes and validates a JSON body, answering 400 on failure.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Report an incident
// @Description Create a new incident from the app or an intake gateway. The incident starts as reported.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model, err := DTOToIncidentModel(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, newest first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param status query string false "Filter by status"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	var status *models.IncidentStatus
	if s := c.Query("status"); s != "" {
		st, err := models.ParseIncidentStatus(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = &st
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), page, pageSize, status)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Incidents near a point
// @Description Open incidents within radius_km of lat/lon.
// @Tags Incidents
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Radius in km" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) listNearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listNearbyIncidents")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	radius, errRadius := strconv.ParseFloat(c.DefaultQuery("radius_km", "10"), 64)
	if errLat != nil || errLon != nil || errRadius != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat, lon and radius_km must be numbers"})
		return
	}

	incidents, err := h.incidentService.ListNearby(c.Request.Context(), geo.Point{Lat: lat, Lon: lon}, radius)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Verify an incident
// @Description Set or clear the admin verification flag. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param body body VerifyIncidentRequest true "Verification flag"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/verify [patch]
func (h *Handler) verifyIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "verifyIncident").WithField("id", id)

	var input VerifyIncidentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.incidentService.VerifyIncident(c.Request.Context(), id, *input.Verified)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Dispatch the nearest ranger
// @Description Assign the nearest available ranger to a reported incident and text them. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 201 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "No ranger available, or incident already assigned"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/dispatch [post]
func (h *Handler) dispatchRanger(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "dispatchRanger").WithField("id", id)

	result, err := h.incidentService.DispatchRanger(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToDispatchResponse(result))
}

// @Summary Change incident status
// @Description Move an incident along its lifecycle. Assignment happens through dispatch. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param body body TransitionRequest true "Target status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Status changed concurrently"
// @Failure 422 {object} map[string]string "Transition not allowed"
// @Router /incidents/{id}/transitions [post]
func (h *Handler) transitionIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "transitionIncident").WithField("id", id)

	var input TransitionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	to, err := models.ParseIncidentStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.TransitionIncident(c.Request.Context(), id, to)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident statistics
// @Description Count incidents per status. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Run the satellite sync now
// @Description Fetch FIRMS detections, drop duplicates and create incidents. Requires API key.
// @Tags Hotspots
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.HotspotSyncResult
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots/sync [post]
func (h *Handler) syncHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "syncHotspots")

	result, err := h.hotspotService.SyncHotspots(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
