package models

import (
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/google/uuid"
)

type Incident struct {
	ID               uuid.UUID      `json:"id"`
	Location         geo.Point      `json:"location"`
	ThreatType       ThreatType     `json:"threat_type"`
	Severity         Severity       `json:"severity"`
	Source           Source         `json:"source"`
	Description      string         `json:"description,omitempty"`
	Verified         bool           `json:"verified"`
	Status           IncidentStatus `json:"status"`
	AssignedRangerID *uuid.UUID     `json:"assigned_ranger_id,omitempty"`
	ETAMinutes       *int           `json:"eta_minutes,omitempty"`
	SenderPhone      *string        `json:"sender_phone,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	AssignedAt       *time.Time     `json:"assigned_at,omitempty"`
	RespondedAt      *time.Time     `json:"responded_at,omitempty"`
	ResolvedAt       *time.Time     `json:"resolved_at,omitempty"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IncidentStats counts incidents per status.
type IncidentStats struct {
	ByStatus map[IncidentStatus]int `json:"by_status"`
	Open     int                    `json:"open"`
	Total    int                    `json:"total"`
}
