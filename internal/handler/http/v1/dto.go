package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest is an incident report from the app or an intake gateway.
// @Description Incident report
type CreateIncidentRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	ThreatType  string   `json:"threat_type" validate:"required" enums:"fire,deforestation,illegal_logging,charcoal_production,poaching,other"`
	Severity    string   `json:"severity" validate:"required" enums:"low,medium,high,critical"`
	Source      string   `json:"source,omitempty" validate:"omitempty,oneof=app sms ussd"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	SenderPhone string   `json:"sender_phone,omitempty" validate:"omitempty,e164"`
}

// IncidentResponse is the API view of an incident.
// @Description Incident
type IncidentResponse struct {
	ID               uuid.UUID  `json:"id"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	ThreatType       string     `json:"threat_type"`
	Severity         string     `json:"severity"`
	Source           string     `json:"source"`
	Description      string     `json:"description,omitempty"`
	Verified         bool       `json:"verified"`
	Status           string     `json:"status"`
	AssignedRangerID *uuid.UUID `json:"assigned_ranger_id,omitempty"`
	ETAMinutes       *int       `json:"eta_minutes,omitempty"`
	SenderPhone      *string    `json:"sender_phone,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	AssignedAt       *time.Time `json:"assigned_at,omitempty"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// VerifyIncidentRequest sets the admin verification flag.
// @Description Verification flag
type VerifyIncidentRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

// TransitionRequest asks for a status change.
// @Description Status transition
type TransitionRequest struct {
	Status string `json:"status" validate:"required" enums:"reported,assigned,en_route,on_scene,resolved,false_alarm"`
}

// DispatchResponse describes the ranger assigned to an incident.
// @Description Dispatch result
type DispatchResponse struct {
	Incident   IncidentResponse `json:"incident"`
	Ranger     RangerResponse   `json:"ranger"`
	DistanceKm float64          `json:"distance_km"`
	ETAMinutes int              `json:"eta_minutes"`
}

// BroadcastRequest starts a community alert around an incident.
// @Description Broadcast request
type BroadcastRequest struct {
	RadiusKm float64 `json:"radius_km" validate:"required,gt=0"`
	Message  string  `json:"message,omitempty" validate:"max=1000"`
}

// BroadcastResponse reports what a broadcast reached.
// @Description Broadcast result
type BroadcastResponse struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	Message    string    `json:"message"`
	Recipients []string  `json:"recipients"`
	RadiusKm   float64   `json:"radius_km"`
	SentAt     time.Time `json:"sent_at"`
	Attempted  int       `json:"attempted"`
	Sent       int       `json:"sent"`
	Failed     int       `json:"failed"`
	Warnings   []string  `json:"warnings,omitempty"`
}

// CommunityReplyResponse is one recorded community reply.
// @Description Community reply
type CommunityReplyResponse struct {
	ID          uuid.UUID `json:"id"`
	IncidentID  uuid.UUID `json:"incident_id"`
	PhoneNumber string    `json:"phone_number"`
	Response    string    `json:"response"`
	Message     string    `json:"message,omitempty"`
	Channel     string    `json:"channel"`
	RespondedAt time.Time `json:"responded_at"`
}

// CreateRangerRequest registers a ranger.
// @Description Ranger registration
type CreateRangerRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	PhoneNumber string   `json:"phone_number" validate:"required,e164"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=available on_duty off_duty"`
}

// RangerResponse is the API view of a ranger.
// @Description Ranger
type RangerResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	PhoneNumber       string     `json:"phone_number"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	Status            string     `json:"status"`
	CurrentIncidentID *uuid.UUID `json:"current_incident_id,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// LocationRequest carries a position update.
// @Description Position
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// RangerStatusRequest is the ranger's own duty toggle.
// @Description Duty status
type RangerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available on_duty off_duty"`
}

// SubscriberRequest registers a phone number for alerts around a location.
// @Description Alert subscription
type SubscriberRequest struct {
	PhoneNumber string   `json:"phone_number" validate:"required,e164"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
}

// SubscriberResponse is the API view of a subscriber.
// @Description Alert subscription
type SubscriberResponse struct {
	PhoneNumber string    `json:"phone_number"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

// InboundSMSRequest is the SMS gateway callback, as JSON or form data.
// @Description Inbound SMS
type InboundSMSRequest struct {
	From string `json:"from" form:"from" validate:"required"`
	Body string `json:"body" form:"body"`
}

// USSDRequest is the USSD gateway callback (form encoded).
type USSDRequest struct {
	SessionID   string `form:"sessionId" validate:"required"`
	ServiceCode string `form:"serviceCode"`
	PhoneNumber string `form:"phoneNumber" validate:"required"`
	Text        string `form:"text"`
}

// StatsResponse counts incidents per status.
// @Description Incident statistics
type StatsResponse struct {
	ByStatus map[string]int `json:"by_status"`
	Open     int            `json:"open"`
	Total    int            `json:"total"`
}
