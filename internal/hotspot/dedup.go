// Package hotspot screens satellite thermal detections before they become incidents.
package hotspot

import (
	"math"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
)

const (
	DefaultToleranceDeg  = 0.01
	DefaultMinConfidence = 80.0
	DefaultWindow        = 24 * time.Hour

	criticalFRP        = 300.0
	highFRP            = 100.0
	highConfidenceOver = 90.0
)

// Detection is one thermal anomaly reported by a satellite feed.
type Detection struct {
	Location   geo.Point `json:"location"`
	Confidence float64   `json:"confidence"`
	FRP        float64   `json:"frp"`
	Brightness float64   `json:"brightness,omitempty"`
	Satellite  string    `json:"satellite,omitempty"`
	Instrument string    `json:"instrument,omitempty"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Accepted is a detection that survived filtering, with its derived severity.
type Accepted struct {
	Detection Detection       `json:"detection"`
	Severity  models.Severity `json:"severity"`
}

type Options struct {
	ToleranceDeg  float64
	MinConfidence float64
	// Window is how far back the caller looks for already-recorded incidents.
	// FilterNewHotspots itself trusts the list it is given.
	Window time.Duration
}

func DefaultOptions() Options {
	return Options{
		ToleranceDeg:  DefaultToleranceDeg,
		MinConfidence: DefaultMinConfidence,
		Window:        DefaultWindow,
	}
}

// FilterNewHotspots drops low-confidence detections and detections that fall in the
// degree box of a recent incident, and classifies the rest. Input order is kept.
//
// The duplicate check is an axis-aligned box (|dLat| < tol and |dLon| < tol), not a
// haversine radius, so its ground size shrinks east-west with latitude.
func FilterNewHotspots(candidates []Detection, recent []models.Incident, opts Options) []Accepted {
	accepted := make([]Accepted, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence < opts.MinConfidence {
			continue
		}
		if duplicatesAny(c.Location, recent, opts.ToleranceDeg) {
			continue
		}
		accepted = append(accepted, Accepted{
			Detection: c,
			Severity:  ClassifySeverity(c.FRP, c.Confidence),
		})
	}
	return accepted
}

func duplicatesAny(p geo.Point, recent []models.Incident, tol float64) bool {
	for _, inc := range recent {
		if math.Abs(p.Lat-inc.Location.Lat) < tol && math.Abs(p.Lon-inc.Location.Lon) < tol {
			return true
		}
	}
	return false
}

// ClassifySeverity maps fire radiative power (MW) and confidence (0-100) to a severity.
func ClassifySeverity(frp, confidence float64) models.Severity {
	switch {
	case frp > criticalFRP:
		return models.SeverityCritical
	case frp > highFRP || confidence > highConfidenceOver:
		return models.SeverityHigh
	default:
		return models.SeverityMedium
	}
}
