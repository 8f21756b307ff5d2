package models

import (
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/google/uuid"
)

type Ranger struct {
	ID                uuid.UUID    `json:"id"`
	Name              string       `json:"name"`
	PhoneNumber       string       `json:"phone_number"`
	Location          geo.Point    `json:"location"`
	Status            RangerStatus `json:"status"`
	CurrentIncidentID *uuid.UUID   `json:"current_incident_id,omitempty"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// Dispatchable reports whether the ranger may receive a new assignment.
func (r Ranger) Dispatchable() bool {
	return r.Status == RangerAvailable && r.CurrentIncidentID == nil
}
