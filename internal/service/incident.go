package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/config"
	"github.com/PreciousMuemi/forest-link/internal/dispatch"
	"github.com/PreciousMuemi/forest-link/internal/events"
	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/lifecycle"
	"github.com/PreciousMuemi/forest-link/internal/messaging"
	"github.com/PreciousMuemi/forest-link/internal/metrics"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type incidentService struct {
	repo         IncidentRepository
	rangers      RangerRepository
	notifier     messaging.Notifier
	publisher    events.Publisher
	matcher      *dispatch.Matcher
	maxRadiusKm  float64
	autoDispatch bool
	logger       *logrus.Logger
	now          func() time.Time
}

func NewIncidentService(
	repo IncidentRepository,
	rangers RangerRepository,
	notifier messaging.Notifier,
	publisher events.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	return &incidentService{
		repo:         repo,
		rangers:      rangers,
		notifier:     notifier,
		publisher:    publisher,
		matcher:      dispatch.NewMatcher(cfg.DispatchAverageSpeedKmh),
		maxRadiusKm:  cfg.BroadcastMaxRadiusKm,
		autoDispatch: cfg.AutoDispatch,
		logger:       logger,
		now:          timeNowUTC,
	}
}

func validateIncident(incident *models.Incident) error {
	if err := incident.Location.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !incident.ThreatType.Valid() {
		return fmt.Errorf("%w: unknown threat type %q", ErrValidation, incident.ThreatType)
	}
	if !incident.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", ErrValidation, incident.Severity)
	}
	if !incident.Source.Valid() {
		return fmt.Errorf("%w: unknown source %q", ErrValidation, incident.Source)
	}
	return nil
}

// CreateIncident stores a new reported incident and, when auto dispatch is on,
// tries to assign the nearest ranger straight away.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"source":  incident.Source,
	})
	log.Info("Attempting to create a new incident")

	if err := validateIncident(incident); err != nil {
		log.WithError(err).Info("Rejected incident")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	incident.Status = models.StatusReported
	incident.AssignedRangerID = nil
	incident.ETAMinutes = nil
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log = log.WithField("incident_id", incident.ID)
	log.Info("Incident created successfully")
	metrics.IncidentsCreated.WithLabelValues(string(incident.Source), string(incident.ThreatType)).Inc()
	publish(ctx, s.publisher, log, events.NewIncidentEvent(events.TypeIncidentCreated, *incident, s.now()))

	if s.autoDispatch {
		result, err := s.DispatchRanger(ctx, incident.ID)
		switch {
		case err == nil:
			*incident = *result.Incident
		case errors.Is(err, dispatch.ErrNoRangerAvailable), errors.Is(err, repository.ErrAssignmentConflict):
			// already logged by DispatchRanger; the report stands unassigned
		default:
			log.WithError(err).Warn("Automatic dispatch failed")
		}
	}
	return nil
}

// GetIncident reads through the Redis cache.
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("Incident not found")
		} else {
			log.WithError(err).Error("Failed to get incident in repository")
		}
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int, status *models.IncidentStatus) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ListIncidents",
		"page":     page,
		"pageSize": pageSize,
	})

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("service: %w: unknown status %q", ErrValidation, *status)
	}

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize, status)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// ListNearby returns open incidents around a point. The radius follows the broadcast policy.
func (s *incidentService) ListNearby(ctx context.Context, center geo.Point, radiusKm float64) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListNearby",
	})

	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w: %w", ErrValidation, err)
	}
	if err := broadcast.ValidateRadius(radiusKm, s.maxRadiusKm); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	incidents, err := s.repo.FindNearby(ctx, center, radiusKm)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby incidents")
		return nil, fmt.Errorf("service: could not find nearby incidents: %w", err)
	}
	return incidents, nil
}

func (s *incidentService) VerifyIncident(ctx context.Context, id uuid.UUID, verified bool) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "VerifyIncident",
		"incident_id": id,
		"verified":    verified,
	})

	if err := s.repo.SetVerified(ctx, id, verified); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.WithError(err).Error("Failed to verify incident")
		}
		return nil, fmt.Errorf("service: could not verify incident: %w", err)
	}
	s.invalidate(ctx, log, id)

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not reload incident: %w", err)
	}
	log.Info("Incident verification updated")
	return incident, nil
}

// TransitionIncident moves an incident along the lifecycle. Assignment is not
// accepted here; it only happens through DispatchRanger.
func (s *incidentService) TransitionIncident(ctx context.Context, id uuid.UUID, to models.IncidentStatus) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "TransitionIncident",
		"incident_id": id,
		"to":          to,
	})

	if !to.Valid() {
		return nil, fmt.Errorf("service: %w: unknown status %q", ErrValidation, to)
	}
	if to == models.StatusAssigned {
		return nil, fmt.Errorf("service: %w: assign a ranger through dispatch", lifecycle.ErrInvalidTransition)
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	from := incident.Status
	log = log.WithField("from", from)

	updated, fx, err := lifecycle.Apply(*incident, to, s.now())
	if err != nil {
		log.WithError(err).Info("Rejected status transition")
		return nil, fmt.Errorf("service: %w", err)
	}

	if err := s.repo.ApplyTransition(ctx, &updated, from, fx); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			log.WithError(err).Info("Incident changed before the transition was written")
		} else {
			log.WithError(err).Error("Failed to apply status transition")
		}
		return nil, fmt.Errorf("service: could not apply transition: %w", err)
	}
	s.invalidate(ctx, log, id)

	metrics.StatusTransitions.WithLabelValues(string(from), string(to)).Inc()
	if to == models.StatusResolved && updated.ResolvedAt != nil {
		metrics.TimeToResolution.Observe(updated.ResolvedAt.Sub(updated.CreatedAt).Seconds())
	}

	if fx.NotifyRanger && fx.RangerID != nil {
		ranger, err := s.rangers.GetByID(ctx, *fx.RangerID)
		if err != nil {
			log.WithError(err).Warn("Failed to load released ranger for notification")
		} else {
			enqueue(ctx, s.notifier, log, messaging.Notification{
				Kind:       messaging.KindRangerReleased,
				Phone:      ranger.PhoneNumber,
				Text:       releaseText(updated),
				IncidentID: &updated.ID,
			})
		}
	}

	event := events.NewIncidentEvent(events.TypeIncidentStatus, updated, s.now())
	event.PrevStatus = from
	if fx.RangerID != nil {
		event.RangerID = fx.RangerID
	}
	publish(ctx, s.publisher, log, event)

	log.Info("Incident status updated")
	return &updated, nil
}

// DispatchRanger assigns the nearest available ranger. ErrNoRangerAvailable and
// repository.ErrAssignmentConflict are normal outcomes and are logged at info.
func (s *incidentService) DispatchRanger(ctx context.Context, id uuid.UUID) (*models.DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DispatchRanger",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		metrics.DispatchOutcomes.WithLabelValues(metrics.DispatchError).Inc()
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.Status != models.StatusReported || incident.AssignedRangerID != nil {
		log.WithField("status", incident.Status).Info("Incident already assigned or closed")
		metrics.DispatchOutcomes.WithLabelValues(metrics.DispatchConflict).Inc()
		return nil, fmt.Errorf("service: incident is %s: %w", incident.Status, repository.ErrAssignmentConflict)
	}

	candidates, err := s.rangers.ListAvailable(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load available rangers")
		metrics.DispatchOutcomes.WithLabelValues(metrics.DispatchError).Inc()
		return nil, fmt.Errorf("service: could not load rangers: %w", err)
	}

	assignment, err := s.matcher.AssignNearestRanger(incident.Location, candidates)
	if err != nil {
		log.WithField("candidates", len(candidates)).Info("No ranger available for dispatch")
		metrics.DispatchOutcomes.WithLabelValues(metrics.DispatchNoRanger).Inc()
		return nil, fmt.Errorf("service: %w", err)
	}

	next := *incident
	rangerID := assignment.Ranger.ID
	eta := assignment.ETAMinutes
	next.AssignedRangerID = &rangerID
	next.ETAMinutes = &eta
	assigned, _, err := lifecycle.Apply(next, models.StatusAssigned, s.now())
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	log = log.WithFields(logrus.Fields{
		"ranger_id":   rangerID,
		"distance_km": assignment.DistanceKm,
		"eta_minutes": eta,
	})
	if err := s.repo.AssignRanger(ctx, &assigned); err != nil {
		if errors.Is(err, repository.ErrAssignmentConflict) {
			log.WithError(err).Info("Lost assignment race; discarding match")
			metrics.DispatchOutcomes.WithLabelValues(metrics.DispatchConflict).Inc()
		} else {
			log.WithError(err).Error("Failed to write assignment")
			metrics.DispatchOutcomes.WithLabelValues(metrics.DispatchError).Inc()
		}
		return nil, fmt.Errorf("service: could not assign ranger: %w", err)
	}
	s.invalidate(ctx, log, id)

	metrics.DispatchOutcomes.WithLabelValues(metrics.DispatchAssigned).Inc()
	metrics.DispatchETAMinutes.Observe(float64(eta))

	enqueue(ctx, s.notifier, log, messaging.Notification{
		Kind:       messaging.KindRangerAssignment,
		Phone:      assignment.Ranger.PhoneNumber,
		Text:       assignmentText(assigned, eta),
		IncidentID: &assigned.ID,
	})
	publish(ctx, s.publisher, log, events.NewIncidentEvent(events.TypeIncidentAssigned, assigned, s.now()))

	log.Info("Ranger dispatched")
	return &models.DispatchResult{
		Incident:   &assigned,
		Ranger:     assignment.Ranger,
		DistanceKm: assignment.DistanceKm,
		ETAMinutes: eta,
	}, nil
}

func (s *incidentService) GetStats(ctx context.Context) (*models.IncidentStats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "GetStats",
		}).WithError(err).Error("Failed to get incident stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return stats, nil
}

func (s *incidentService) invalidate(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}
