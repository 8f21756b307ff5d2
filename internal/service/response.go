package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/config"
	"github.com/PreciousMuemi/forest-link/internal/events"
	"github.com/PreciousMuemi/forest-link/internal/messaging"
	"github.com/PreciousMuemi/forest-link/internal/metrics"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/response"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// recentIncidentLimit bounds the incidents scanned for the newest-incident fallback.
	recentIncidentLimit = 500
	// refLookupLimit bounds the stored incidents fetched for a #ref older than the recent window.
	refLookupLimit = 5
)

type responseService struct {
	incidents IncidentRepository
	rangers   RangerRepository
	community CommunityRepository
	notifier  messaging.Notifier
	publisher events.Publisher
	lookback  time.Duration
	logger    *logrus.Logger
	now       func() time.Time
}

func NewResponseService(
	incidents IncidentRepository,
	rangers RangerRepository,
	community CommunityRepository,
	notifier messaging.Notifier,
	publisher events.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) ResponseService {
	lookback := cfg.ResponseLookback
	if lookback <= 0 {
		lookback = 72 * time.Hour
	}
	return &responseService{
		incidents: incidents,
		rangers:   rangers,
		community: community,
		notifier:  notifier,
		publisher: publisher,
		lookback:  lookback,
		logger:    logger,
		now:       timeNowUTC,
	}
}

// HandleInbound classifies a reply, ties it to an incident and records it.
// Replies never change incident status. NEED_HELP additionally pages the
// ranger assigned to the incident, if there is one.
func (s *responseService) HandleInbound(ctx context.Context, msg models.InboundMessage) (*models.CommunityResponse, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "response",
		"method":  "HandleInbound",
		"channel": msg.Channel,
	})

	from := strings.TrimSpace(msg.From)
	if from == "" {
		return nil, fmt.Errorf("service: %w: sender is required", ErrValidation)
	}
	if msg.Channel == "" {
		msg.Channel = models.ChannelSMS
	}

	classification := response.Classify(msg.Body)
	log = log.WithField("kind", classification.Kind)
	if classification.Kind != models.ResponseOther && classification.Note != "" {
		log = log.WithField("ref", classification.Note)
	}

	now := s.now()
	broadcasts, err := s.community.ListBroadcastsForPhone(ctx, from, now.Add(-s.lookback))
	if err != nil {
		log.WithError(err).Error("Failed to load broadcasts for sender")
		return nil, fmt.Errorf("service: could not load broadcasts: %w", err)
	}
	recent, err := s.incidents.ListRecent(ctx, time.Time{}, recentIncidentLimit)
	if err != nil {
		log.WithError(err).Error("Failed to load recent incidents")
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}

	if ref := response.ExtractRef(msg.Body); ref != "" && !anyMatchesRef(recent, ref) {
		older, err := s.incidents.ListByIDPrefix(ctx, ref, refLookupLimit)
		if err != nil {
			log.WithError(err).Warn("Failed to look up incident reference")
		}
		recent = append(recent, older...)
	}

	target, ok := response.ResolveTargetIncident(from, msg.Body, broadcasts, recent)
	if !ok {
		log.Info("Reply received but there are no incidents")
		return nil, fmt.Errorf("service: %w", ErrNoTargetIncident)
	}
	log = log.WithField("incident_id", target)

	resp := &models.CommunityResponse{
		IncidentID:  target,
		PhoneNumber: from,
		Response:    classification.Kind,
		Message:     strings.TrimSpace(msg.Body),
		Channel:     msg.Channel,
	}
	if err := s.community.SaveResponse(ctx, resp); err != nil {
		log.WithError(err).Error("Failed to save community response")
		return nil, fmt.Errorf("service: could not save response: %w", err)
	}
	metrics.CommunityResponses.WithLabelValues(string(resp.Response), string(resp.Channel)).Inc()

	incident := findIncident(recent, target)
	if incident == nil {
		if incident, err = s.incidents.GetByID(ctx, target); err != nil {
			log.WithError(err).Warn("Failed to load incident for reply follow-up")
		}
	}

	if incident != nil {
		if resp.Response == models.ResponseNeedHelp {
			s.pageRanger(ctx, log, *incident, from)
		}
		event := events.NewIncidentEvent(events.TypeCommunityResponse, *incident, now)
		event.Detail = map[string]any{
			"response": string(resp.Response),
			"channel":  string(resp.Channel),
		}
		publish(ctx, s.publisher, log, event)
	}

	log.Info("Community response recorded")
	return resp, nil
}

func (s *responseService) pageRanger(ctx context.Context, log *logrus.Entry, incident models.Incident, from string) {
	if incident.AssignedRangerID == nil {
		log.Info("NEED_HELP reply on an incident without a ranger")
		return
	}
	ranger, err := s.rangers.GetByID(ctx, *incident.AssignedRangerID)
	if err != nil {
		log.WithError(err).Warn("Failed to load ranger for NEED_HELP page")
		return
	}
	enqueue(ctx, s.notifier, log, messaging.Notification{
		Kind:       messaging.KindUrgentHelp,
		Phone:      ranger.PhoneNumber,
		Text:       urgentHelpText(incident, from),
		IncidentID: &incident.ID,
	})
}

func (s *responseService) ListResponses(ctx context.Context, incidentID uuid.UUID) ([]models.CommunityResponse, error) {
	responses, err := s.community.ListResponses(ctx, incidentID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "response",
			"method":      "ListResponses",
			"incident_id": incidentID,
		}).WithError(err).Error("Failed to list responses")
		return nil, fmt.Errorf("service: could not list responses: %w", err)
	}
	return responses, nil
}

func anyMatchesRef(incidents []models.Incident, ref string) bool {
	for _, inc := range incidents {
		if response.MatchesRef(inc.ID, ref) {
			return true
		}
	}
	return false
}

func findIncident(incidents []models.Incident, id uuid.UUID) *models.Incident {
	for i := range incidents {
		if incidents[i].ID == id {
			return &incidents[i]
		}
	}
	return nil
}
