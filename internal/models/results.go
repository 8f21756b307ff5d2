package models

import (
	"github.com/google/uuid"
)

// DispatchResult describes a successful ranger assignment.
type DispatchResult struct {
	Incident   *Incident `json:"incident"`
	Ranger     Ranger    `json:"ranger"`
	DistanceKm float64   `json:"distance_km"`
	ETAMinutes int       `json:"eta_minutes"`
}

// InboundMessage is a community reply from the SMS or USSD webhook.
type InboundMessage struct {
	From    string
	Body    string
	Channel Channel
}

// HotspotSyncResult counts what one satellite sync did.
type HotspotSyncResult struct {
	Fetched  int         `json:"fetched"`
	Accepted int         `json:"accepted"`
	Dropped  int         `json:"dropped"`
	Created  []uuid.UUID `json:"created"`
	Failed   int         `json:"failed"`
}
