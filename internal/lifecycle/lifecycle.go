// Package lifecycle governs incident status transitions and the timestamps they stamp.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRangerNotAssigned = errors.New("incident has no assigned ranger")
)

var transitions = map[models.IncidentStatus][]models.IncidentStatus{
	models.StatusReported:   {models.StatusAssigned, models.StatusFalseAlarm},
	models.StatusAssigned:   {models.StatusEnRoute, models.StatusFalseAlarm},
	models.StatusEnRoute:    {models.StatusOnScene},
	models.StatusOnScene:    {models.StatusResolved},
	models.StatusResolved:   nil,
	models.StatusFalseAlarm: nil,
}

// Allowed returns the statuses reachable from from.
func Allowed(from models.IncidentStatus) []models.IncidentStatus {
	return append([]models.IncidentStatus(nil), transitions[from]...)
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to models.IncidentStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func Terminal(s models.IncidentStatus) bool {
	return len(transitions[s]) == 0
}

// Effects are the side effects the caller must carry out in the same write as the
// status change.
type Effects struct {
	// ReleaseRanger clears the ranger's current incident and makes it available again.
	ReleaseRanger bool
	RangerID      *uuid.UUID
	// NotifyRanger asks for a message to the ranger about the new status.
	NotifyRanger bool
}

// Apply validates inc.Status -> to and returns the updated incident. inc is not modified.
func Apply(inc models.Incident, to models.IncidentStatus, now time.Time) (models.Incident, Effects, error) {
	from := inc.Status
	if !CanTransition(from, to) {
		return inc, Effects{}, fmt.Errorf("%w: %s -> %s (allowed: %v)", ErrInvalidTransition, from, to, Allowed(from))
	}
	if to.HasRanger() && inc.AssignedRangerID == nil {
		return inc, Effects{}, fmt.Errorf("%w: cannot enter %s", ErrRangerNotAssigned, to)
	}

	next := inc
	now = notBefore(now, inc)
	var fx Effects

	switch to {
	case models.StatusAssigned:
		if next.AssignedAt == nil {
			next.AssignedAt = &now
		}
	case models.StatusEnRoute, models.StatusOnScene:
		if next.RespondedAt == nil {
			next.RespondedAt = &now
		}
	case models.StatusResolved:
		next.ResolvedAt = &now
		fx.ReleaseRanger = inc.AssignedRangerID != nil
		fx.RangerID = inc.AssignedRangerID
	case models.StatusFalseAlarm:
		// keep the incident invariant: no ranger outside assigned..resolved
		if inc.AssignedRangerID != nil {
			fx.ReleaseRanger = true
			fx.RangerID = inc.AssignedRangerID
			fx.NotifyRanger = true
		}
		next.AssignedRangerID = nil
		next.ETAMinutes = nil
	}

	next.Status = to
	next.UpdatedAt = now
	return next, fx, nil
}

// notBefore keeps stamps monotonic when the caller's clock is behind stored timestamps.
func notBefore(now time.Time, inc models.Incident) time.Time {
	latest := inc.CreatedAt
	for _, ts := range []*time.Time{inc.AssignedAt, inc.RespondedAt, inc.ResolvedAt} {
		if ts != nil && ts.After(latest) {
			latest = *ts
		}
	}
	if now.Before(latest) {
		return latest
	}
	return now
}
