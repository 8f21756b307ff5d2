// Package broadcast selects community subscribers near an incident and renders the alert text.
package broadcast

import (
	"errors"
	"fmt"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
)

// DefaultMaxRadiusKm is the policy cap on broadcast radius.
const DefaultMaxRadiusKm = 50.0

// tolerance on the inclusive radius boundary, about a micrometre
const boundaryEpsilonKm = 1e-9

var (
	ErrInvalidRadius      = errors.New("invalid broadcast radius")
	ErrPartialSendFailure = errors.New("some broadcast recipients failed")
)

// ValidateRadius checks 0 < radiusKm <= maxRadiusKm.
func ValidateRadius(radiusKm, maxRadiusKm float64) error {
	if !(radiusKm > 0) || radiusKm > maxRadiusKm {
		return fmt.Errorf("%w: %v km (allowed: (0, %v])", ErrInvalidRadius, radiusKm, maxRadiusKm)
	}
	return nil
}

// SelectRecipients returns the phone numbers of subscribers within radiusKm of loc,
// boundary inclusive, each number once, in first-seen order.
func SelectRecipients(loc geo.Point, radiusKm, maxRadiusKm float64, subscribers []models.CommunitySubscriber) ([]string, error) {
	if err := ValidateRadius(radiusKm, maxRadiusKm); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(subscribers))
	recipients := make([]string, 0, len(subscribers))
	for _, s := range subscribers {
		if s.PhoneNumber == "" {
			continue
		}
		if _, dup := seen[s.PhoneNumber]; dup {
			continue
		}
		if geo.DistanceKm(loc, s.Location) > radiusKm+boundaryEpsilonKm {
			continue
		}
		seen[s.PhoneNumber] = struct{}{}
		recipients = append(recipients, s.PhoneNumber)
	}
	return recipients, nil
}
