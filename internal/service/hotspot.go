package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/config"
	"github.com/PreciousMuemi/forest-link/internal/hotspot"
	"github.com/PreciousMuemi/forest-link/internal/metrics"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type hotspotService struct {
	source    HotspotSource
	repo      IncidentRepository
	incidents IncidentService
	opts      hotspot.Options
	logger    *logrus.Logger
	now       func() time.Time
}

// NewHotspotService creates the satellite sync. Accepted detections go through
// incidents.CreateIncident so they get the same events and auto dispatch as any report.
func NewHotspotService(source HotspotSource, repo IncidentRepository, incidents IncidentService, logger *logrus.Logger, cfg *config.Config) HotspotService {
	opts := hotspot.DefaultOptions()
	if cfg.HotspotToleranceDeg > 0 {
		opts.ToleranceDeg = cfg.HotspotToleranceDeg
	}
	if cfg.HotspotMinConfidence > 0 {
		opts.MinConfidence = cfg.HotspotMinConfidence
	}
	if cfg.HotspotWindow > 0 {
		opts.Window = cfg.HotspotWindow
	}
	return &hotspotService{
		source:    source,
		repo:      repo,
		incidents: incidents,
		opts:      opts,
		logger:    logger,
		now:       timeNowUTC,
	}
}

func (s *hotspotService) SyncHotspots(ctx context.Context) (*models.HotspotSyncResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hotspot",
		"method":  "SyncHotspots",
	})

	detections, err := s.source.Fetch(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch satellite detections")
		return nil, fmt.Errorf("service: could not fetch hotspots: %w", err)
	}

	recent, err := s.repo.ListRecentBySource(ctx, models.SourceSatellite, s.now().Add(-s.opts.Window))
	if err != nil {
		log.WithError(err).Error("Failed to load recent satellite incidents")
		return nil, fmt.Errorf("service: could not load recent satellite incidents: %w", err)
	}

	result := &models.HotspotSyncResult{
		Fetched: len(detections),
		Created: make([]uuid.UUID, 0, len(detections)),
	}

	// Detections are screened one at a time so a fire seen twice in the same batch
	// is held back by the incident created for its first sighting.
	for _, d := range detections {
		accepted := hotspot.FilterNewHotspots([]hotspot.Detection{d}, recent, s.opts)
		if len(accepted) == 0 {
			result.Dropped++
			continue
		}
		result.Accepted++
		a := accepted[0]

		incident := &models.Incident{
			Location:   a.Detection.Location,
			ThreatType: models.ThreatFire,
			Severity:   a.Severity,
			Source:     models.SourceSatellite,
			Description: fmt.Sprintf("Satellite hotspot %s/%s: confidence %.0f, FRP %.1f MW, acquired %s",
				a.Detection.Satellite, a.Detection.Instrument, a.Detection.Confidence, a.Detection.FRP,
				a.Detection.AcquiredAt.Format(time.RFC3339)),
		}
		if err := s.incidents.CreateIncident(ctx, incident); err != nil {
			result.Failed++
			log.WithError(err).Warn("Failed to create incident from hotspot")
			continue
		}
		result.Created = append(result.Created, incident.ID)
		recent = append(recent, *incident)
	}
	metrics.HotspotsProcessed.WithLabelValues("accepted").Add(float64(result.Accepted))
	metrics.HotspotsProcessed.WithLabelValues("dropped").Add(float64(result.Dropped))

	log.WithFields(logrus.Fields{
		"fetched":  result.Fetched,
		"accepted": result.Accepted,
		"created":  len(result.Created),
		"failed":   result.Failed,
	}).Info("Satellite sync finished")
	return result, nil
}
