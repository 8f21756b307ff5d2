package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type rangerService struct {
	repo   RangerRepository
	logger *logrus.Logger
}

func NewRangerService(repo RangerRepository, logger *logrus.Logger) RangerService {
	return &rangerService{
		repo:   repo,
		logger: logger,
	}
}

func (s *rangerService) RegisterRanger(ctx context.Context, ranger *models.Ranger) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ranger",
		"method":  "RegisterRanger",
	})

	ranger.Name = strings.TrimSpace(ranger.Name)
	if ranger.Name == "" || strings.TrimSpace(ranger.PhoneNumber) == "" {
		return fmt.Errorf("service: %w: name and phone number are required", ErrValidation)
	}
	if err := ranger.Location.Validate(); err != nil {
		return fmt.Errorf("service: %w: %w", ErrValidation, err)
	}
	// new rangers never start holding an incident
	if ranger.Status == "" {
		ranger.Status = models.RangerAvailable
	}
	if !ranger.Status.Valid() || ranger.Status.HoldsIncident() {
		return fmt.Errorf("service: %w: ranger cannot start as %q", ErrValidation, ranger.Status)
	}
	ranger.CurrentIncidentID = nil

	if err := s.repo.Create(ctx, ranger); err != nil {
		log.WithError(err).Error("Failed to create ranger in repository")
		return fmt.Errorf("service: could not register ranger: %w", err)
	}
	log.WithField("ranger_id", ranger.ID).Info("Ranger registered")
	return nil
}

func (s *rangerService) ListRangers(ctx context.Context) ([]models.Ranger, error) {
	rangers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "ranger",
			"method":  "ListRangers",
		}).WithError(err).Error("Failed to list rangers")
		return nil, fmt.Errorf("service: could not list rangers: %w", err)
	}
	return rangers, nil
}

func (s *rangerService) UpdateRangerLocation(ctx context.Context, id uuid.UUID, location geo.Point) error {
	if err := location.Validate(); err != nil {
		return fmt.Errorf("service: %w: %w", ErrValidation, err)
	}
	if err := s.repo.UpdateLocation(ctx, id, location); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.WithFields(logrus.Fields{
				"service":   "ranger",
				"method":    "UpdateRangerLocation",
				"ranger_id": id,
			}).WithError(err).Error("Failed to update ranger location")
		}
		return fmt.Errorf("service: could not update ranger location: %w", err)
	}
	return nil
}

// SetRangerStatus is the ranger self-service duty toggle. en_route and on_scene
// belong to dispatch and incident transitions.
func (s *rangerService) SetRangerStatus(ctx context.Context, id uuid.UUID, status models.RangerStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "ranger",
		"method":    "SetRangerStatus",
		"ranger_id": id,
		"status":    status,
	})

	if !status.Valid() || status.HoldsIncident() {
		return fmt.Errorf("service: %w: status %q cannot be set directly", ErrValidation, status)
	}
	if err := s.repo.SetDutyStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRangerBusy) || errors.Is(err, repository.ErrNotFound) {
			log.WithError(err).Info("Ranger status not changed")
		} else {
			log.WithError(err).Error("Failed to set ranger status")
		}
		return fmt.Errorf("service: could not set ranger status: %w", err)
	}
	log.Info("Ranger status updated")
	return nil
}
