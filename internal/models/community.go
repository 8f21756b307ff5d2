package models

import (
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/google/uuid"
)

// CommunitySubscriber is a phone number registered for alerts around a location.
type CommunitySubscriber struct {
	PhoneNumber string    `json:"phone_number"`
	Location    geo.Point `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommunityResponse records one inbound reply. It is never updated after creation.
type CommunityResponse struct {
	ID          uuid.UUID    `json:"id"`
	IncidentID  uuid.UUID    `json:"incident_id"`
	PhoneNumber string       `json:"phone_number"`
	Response    ResponseKind `json:"response"`
	Message     string       `json:"message,omitempty"`
	Channel     Channel      `json:"channel"`
	RespondedAt time.Time    `json:"responded_at"`
}

// AlertBroadcast logs one broadcast. Recipients holds only confirmed sends.
type AlertBroadcast struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	Message    string    `json:"message"`
	Recipients []string  `json:"recipients"`
	RadiusKm   float64   `json:"radius_km"`
	SentAt     time.Time `json:"sent_at"`
}

// HasRecipient reports whether phone was among the confirmed recipients.
func (b AlertBroadcast) HasRecipient(phone string) bool {
	for _, r := range b.Recipients {
		if r == phone {
			return true
		}
	}
	return false
}
