package v1

import (
	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
)

// DTOToIncidentModel converts a report into a domain incident. Source defaults to app.
// Threat type and severity are matched case-insensitively, as gateways forward them.
func DTOToIncidentModel(dto CreateIncidentRequest) (*models.Incident, error) {
	threat, err := models.ParseThreatType(dto.ThreatType)
	if err != nil {
		return nil, err
	}
	severity, err := models.ParseSeverity(dto.Severity)
	if err != nil {
		return nil, err
	}
	source := models.Source(dto.Source)
	if source == "" {
		source = models.SourceApp
	}
	incident := &models.Incident{
		Location:    pointFrom(dto.Latitude, dto.Longitude),
		ThreatType:  threat,
		Severity:    severity,
		Source:      source,
		Description: dto.Description,
	}
	if dto.SenderPhone != "" {
		phone := dto.SenderPhone
		incident.SenderPhone = &phone
	}
	return incident, nil
}

func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:               model.ID,
		Latitude:         model.Location.Lat,
		Longitude:        model.Location.Lon,
		ThreatType:       string(model.ThreatType),
		Severity:         string(model.Severity),
		Source:           string(model.Source),
		Description:      model.Description,
		Verified:         model.Verified,
		Status:           string(model.Status),
		AssignedRangerID: model.AssignedRangerID,
		ETAMinutes:       model.ETAMinutes,
		SenderPhone:      model.SenderPhone,
		CreatedAt:        model.CreatedAt,
		AssignedAt:       model.AssignedAt,
		RespondedAt:      model.RespondedAt,
		ResolvedAt:       model.ResolvedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ModelsToIncidentResponses(incidents []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i := range incidents {
		responses[i] = ModelToIncidentResponse(&incidents[i])
	}
	return responses
}

func DTOToRangerModel(dto CreateRangerRequest) *models.Ranger {
	return &models.Ranger{
		Name:        dto.Name,
		PhoneNumber: dto.PhoneNumber,
		Location:    pointFrom(dto.Latitude, dto.Longitude),
		Status:      models.RangerStatus(dto.Status),
	}
}

func ModelToRangerResponse(model *models.Ranger) *RangerResponse {
	return &RangerResponse{
		ID:                model.ID,
		Name:              model.Name,
		PhoneNumber:       model.PhoneNumber,
		Latitude:          model.Location.Lat,
		Longitude:         model.Location.Lon,
		Status:            string(model.Status),
		CurrentIncidentID: model.CurrentIncidentID,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ModelsToRangerResponses(rangers []models.Ranger) []*RangerResponse {
	responses := make([]*RangerResponse, len(rangers))
	for i := range rangers {
		responses[i] = ModelToRangerResponse(&rangers[i])
	}
	return responses
}

func ModelToDispatchResponse(result *models.DispatchResult) *DispatchResponse {
	return &DispatchResponse{
		Incident:   *ModelToIncidentResponse(result.Incident),
		Ranger:     *ModelToRangerResponse(&result.Ranger),
		DistanceKm: result.DistanceKm,
		ETAMinutes: result.ETAMinutes,
	}
}

func ResultToBroadcastResponse(result *broadcast.Result) *BroadcastResponse {
	b := result.Broadcast
	recipients := b.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	return &BroadcastResponse{
		ID:         b.ID,
		IncidentID: b.IncidentID,
		Message:    b.Message,
		Recipients: recipients,
		RadiusKm:   b.RadiusKm,
		SentAt:     b.SentAt,
		Attempted:  result.Attempted,
		Sent:       result.Sent,
		Failed:     result.Failed,
		Warnings:   result.Warnings,
	}
}

func ModelToCommunityReply(model *models.CommunityResponse) *CommunityReplyResponse {
	return &CommunityReplyResponse{
		ID:          model.ID,
		IncidentID:  model.IncidentID,
		PhoneNumber: model.PhoneNumber,
		Response:    string(model.Response),
		Message:     model.Message,
		Channel:     string(model.Channel),
		RespondedAt: model.RespondedAt,
	}
}

func ModelsToCommunityReplies(replies []models.CommunityResponse) []*CommunityReplyResponse {
	out := make([]*CommunityReplyResponse, len(replies))
	for i := range replies {
		out[i] = ModelToCommunityReply(&replies[i])
	}
	return out
}

func DTOToSubscriberModel(dto SubscriberRequest) *models.CommunitySubscriber {
	return &models.CommunitySubscriber{
		PhoneNumber: dto.PhoneNumber,
		Location:    pointFrom(dto.Latitude, dto.Longitude),
	}
}

func ModelToSubscriberResponse(model *models.CommunitySubscriber) *SubscriberResponse {
	return &SubscriberResponse{
		PhoneNumber: model.PhoneNumber,
		Latitude:    model.Location.Lat,
		Longitude:   model.Location.Lon,
		CreatedAt:   model.CreatedAt,
	}
}

func ModelToStatsResponse(stats *models.IncidentStats) *StatsResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, n := range stats.ByStatus {
		byStatus[string(status)] = n
	}
	return &StatsResponse{
		ByStatus: byStatus,
		Open:     stats.Open,
		Total:    stats.Total,
	}
}

// pointFrom reads validated coordinates; validation guarantees both are set.
func pointFrom(lat, lon *float64) geo.Point {
	var p geo.Point
	if lat != nil {
		p.Lat = *lat
	}
	if lon != nil {
		p.Lon = *lon
	}
	return p
}
