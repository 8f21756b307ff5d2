// Package dispatch picks the ranger to send to an incident.
package dispatch

import (
	"errors"
	"math"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
)

// DefaultAverageSpeedKmh is the assumed travel speed through forest terrain.
const DefaultAverageSpeedKmh = 40.0

// absorbs float noise so that e.g. 20 km at 40 km/h is 30 minutes, not 31
const etaEpsilon = 1e-9

// ErrNoRangerAvailable means no candidate was eligible. It is a normal outcome.
var ErrNoRangerAvailable = errors.New("no ranger available")

// Assignment is the matcher's proposal. Persisting it is up to the caller.
type Assignment struct {
	Ranger     models.Ranger `json:"ranger"`
	DistanceKm float64       `json:"distance_km"`
	ETAMinutes int           `json:"eta_minutes"`
}

type Matcher struct {
	AverageSpeedKmh float64
}

// NewMatcher returns a matcher; a non-positive speed falls back to DefaultAverageSpeedKmh.
func NewMatcher(averageSpeedKmh float64) *Matcher {
	if averageSpeedKmh <= 0 {
		averageSpeedKmh = DefaultAverageSpeedKmh
	}
	return &Matcher{AverageSpeedKmh: averageSpeedKmh}
}

// AssignNearestRanger selects the closest dispatchable ranger to loc.
// Only rangers with status available and no current incident are considered.
// Equal distances are broken by ascending ranger id.
func (m *Matcher) AssignNearestRanger(loc geo.Point, candidates []models.Ranger) (Assignment, error) {
	var (
		best  Assignment
		found bool
	)
	for _, r := range candidates {
		if !r.Dispatchable() {
			continue
		}
		d := geo.DistanceKm(loc, r.Location)
		if !found || d < best.DistanceKm || (d == best.DistanceKm && r.ID.String() < best.Ranger.ID.String()) {
			best = Assignment{Ranger: r, DistanceKm: d}
			found = true
		}
	}
	if !found {
		return Assignment{}, ErrNoRangerAvailable
	}

	best.ETAMinutes = m.ETAMinutes(best.DistanceKm)
	return best, nil
}

// ETAMinutes converts a distance into whole minutes, rounding up.
func (m *Matcher) ETAMinutes(distanceKm float64) int {
	minutes := distanceKm / m.AverageSpeedKmh * 60
	return int(math.Ceil(minutes - etaEpsilon))
}
