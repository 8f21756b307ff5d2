package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/config"
	"github.com/PreciousMuemi/forest-link/internal/events"
	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/messaging"
	"github.com/PreciousMuemi/forest-link/internal/metrics"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBroadcastConcurrency = 8
	broadcastTimeout            = 2 * time.Minute
)

type broadcastService struct {
	incidents   IncidentRepository
	community   CommunityRepository
	sender      messaging.Sender
	publisher   events.Publisher
	maxRadiusKm float64
	concurrency int
	logger      *logrus.Logger
	now         func() time.Time
}

func NewBroadcastService(
	incidents IncidentRepository,
	community CommunityRepository,
	sender messaging.Sender,
	publisher events.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) BroadcastService {
	concurrency := cfg.BroadcastConcurrency
	if concurrency <= 0 {
		concurrency = defaultBroadcastConcurrency
	}
	maxRadius := cfg.BroadcastMaxRadiusKm
	if maxRadius <= 0 {
		maxRadius = broadcast.DefaultMaxRadiusKm
	}
	return &broadcastService{
		incidents:   incidents,
		community:   community,
		sender:      sender,
		publisher:   publisher,
		maxRadiusKm: maxRadius,
		concurrency: concurrency,
		logger:      logger,
		now:         timeNowUTC,
	}
}

// BroadcastAlert texts every subscriber within radiusKm of the incident. Every
// recipient is attempted; failures are counted, and the stored broadcast lists
// only confirmed recipients. A partial failure is reported through
// Result.PartialFailure, not as an error.
func (s *broadcastService) BroadcastAlert(ctx context.Context, incidentID uuid.UUID, radiusKm float64, customMessage string) (*broadcast.Result, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "broadcast",
		"method":      "BroadcastAlert",
		"incident_id": incidentID,
		"radius_km":   radiusKm,
	})

	if err := broadcast.ValidateRadius(radiusKm, s.maxRadiusKm); err != nil {
		log.WithError(err).Info("Rejected broadcast radius")
		return nil, fmt.Errorf("service: %w", err)
	}

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	subscribers, err := s.community.ListSubscribersInBox(ctx, geo.BoundingBoxAround(incident.Location, radiusKm))
	if err != nil {
		log.WithError(err).Error("Failed to load subscribers")
		return nil, fmt.Errorf("service: could not load subscribers: %w", err)
	}

	recipients, err := broadcast.SelectRecipients(incident.Location, radiusKm, s.maxRadiusKm, subscribers)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	msg := broadcast.RenderMessage(*incident, customMessage)

	// Once sending starts, a dropped request must not stop the remaining sends
	// or the record of who was reached.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), broadcastTimeout)
	defer cancel()

	sent := make([]bool, len(recipients))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, phone := range recipients {
		g.Go(func() error {
			if err := s.sender.Send(sendCtx, phone, msg.Text); err != nil {
				log.WithError(err).WithField("to", phone).Warn("Failed to send alert")
				return nil
			}
			sent[i] = true
			return nil
		})
	}
	_ = g.Wait()

	confirmed := make([]string, 0, len(recipients))
	for i, ok := range sent {
		if ok {
			confirmed = append(confirmed, recipients[i])
		}
	}

	record := models.AlertBroadcast{
		IncidentID: incident.ID,
		Message:    msg.Text,
		Recipients: confirmed,
		RadiusKm:   radiusKm,
	}
	if err := s.community.SaveBroadcast(sendCtx, &record); err != nil {
		// the messages are out; losing the log must still be visible to the caller
		log.WithError(err).WithField("sent", len(confirmed)).Error("Failed to record broadcast")
		return nil, fmt.Errorf("service: could not record broadcast: %w", err)
	}

	result := &broadcast.Result{
		Broadcast: record,
		Attempted: len(recipients),
		Sent:      len(confirmed),
		Failed:    len(recipients) - len(confirmed),
		Warnings:  msg.Warnings(),
	}
	metrics.BroadcastRecipients.WithLabelValues(metrics.SendResultSent).Add(float64(result.Sent))
	metrics.BroadcastRecipients.WithLabelValues(metrics.SendResultFailed).Add(float64(result.Failed))

	event := events.NewIncidentEvent(events.TypeIncidentBroadcast, *incident, s.now())
	event.Detail = map[string]any{
		"broadcast_id": record.ID.String(),
		"radius_km":    radiusKm,
		"attempted":    result.Attempted,
		"sent":         result.Sent,
	}
	publish(sendCtx, s.publisher, log, event)

	entry := log.WithFields(logrus.Fields{
		"attempted": result.Attempted,
		"sent":      result.Sent,
		"failed":    result.Failed,
	})
	if err := result.PartialFailure(); err != nil {
		entry.WithError(err).Warn("Broadcast partially failed")
	} else {
		entry.Info("Broadcast sent")
	}
	return result, nil
}

func (s *broadcastService) RegisterSubscriber(ctx context.Context, sub *models.CommunitySubscriber) error {
	sub.PhoneNumber = strings.TrimSpace(sub.PhoneNumber)
	if sub.PhoneNumber == "" {
		return fmt.Errorf("service: %w: phone number is required", ErrValidation)
	}
	if err := sub.Location.Validate(); err != nil {
		return fmt.Errorf("service: %w: %w", ErrValidation, err)
	}
	if err := s.community.UpsertSubscriber(ctx, sub); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "broadcast",
			"method":  "RegisterSubscriber",
		}).WithError(err).Error("Failed to save subscriber")
		return fmt.Errorf("service: could not register subscriber: %w", err)
	}
	return nil
}

func (s *broadcastService) GetSubscriber(ctx context.Context, phone string) (*models.CommunitySubscriber, error) {
	sub, err := s.community.GetSubscriberByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.WithFields(logrus.Fields{
				"service": "broadcast",
				"method":  "GetSubscriber",
			}).WithError(err).Error("Failed to get subscriber")
		}
		return nil, fmt.Errorf("service: could not get subscriber: %w", err)
	}
	return sub, nil
}
