package service

import (
	"context"
	"errors"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/hotspot"
	"github.com/PreciousMuemi/forest-link/internal/lifecycle"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrValidation marks input rejected before any write.
	ErrValidation = errors.New("validation failed")
	// ErrNoTargetIncident means a community reply could not be tied to any incident.
	ErrNoTargetIncident = errors.New("no incident to attach response to")
)

// IncidentRepository is the incident store plus its Redis cache.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, page, pageSize int, status *models.IncidentStatus) ([]models.Incident, error)
	ListRecent(ctx context.Context, since time.Time, limit int) ([]models.Incident, error)
	ListByIDPrefix(ctx context.Context, prefix string, limit int) ([]models.Incident, error)
	ListRecentBySource(ctx context.Context, source models.Source, since time.Time) ([]models.Incident, error)
	FindNearby(ctx context.Context, center geo.Point, radiusKm float64) ([]models.Incident, error)
	AssignRanger(ctx context.Context, assigned *models.Incident) error
	ApplyTransition(ctx context.Context, updated *models.Incident, from models.IncidentStatus, fx lifecycle.Effects) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	GetStats(ctx context.Context) (*models.IncidentStats, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

type RangerRepository interface {
	Create(ctx context.Context, ranger *models.Ranger) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ranger, error)
	List(ctx context.Context) ([]models.Ranger, error)
	ListAvailable(ctx context.Context) ([]models.Ranger, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, location geo.Point) error
	SetDutyStatus(ctx context.Context, id uuid.UUID, status models.RangerStatus) error
}

type CommunityRepository interface {
	UpsertSubscriber(ctx context.Context, sub *models.CommunitySubscriber) error
	GetSubscriberByPhone(ctx context.Context, phone string) (*models.CommunitySubscriber, error)
	ListSubscribersInBox(ctx context.Context, box geo.BBox) ([]models.CommunitySubscriber, error)
	SaveBroadcast(ctx context.Context, b *models.AlertBroadcast) error
	ListBroadcastsForPhone(ctx context.Context, phone string, since time.Time) ([]models.AlertBroadcast, error)
	SaveResponse(ctx context.Context, resp *models.CommunityResponse) error
	ListResponses(ctx context.Context, incidentID uuid.UUID) ([]models.CommunityResponse, error)
}

// HotspotSource fetches satellite detections, normally hotspot.FIRMSClient.
type HotspotSource interface {
	Fetch(ctx context.Context) ([]hotspot.Detection, error)
}

type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, page, pageSize int, status *models.IncidentStatus) ([]models.Incident, error)
	ListNearby(ctx context.Context, center geo.Point, radiusKm float64) ([]models.Incident, error)
	VerifyIncident(ctx context.Context, id uuid.UUID, verified bool) (*models.Incident, error)
	TransitionIncident(ctx context.Context, id uuid.UUID, to models.IncidentStatus) (*models.Incident, error)
	DispatchRanger(ctx context.Context, id uuid.UUID) (*models.DispatchResult, error)
	GetStats(ctx context.Context) (*models.IncidentStats, error)
}

type RangerService interface {
	RegisterRanger(ctx context.Context, ranger *models.Ranger) error
	ListRangers(ctx context.Context) ([]models.Ranger, error)
	UpdateRangerLocation(ctx context.Context, id uuid.UUID, location geo.Point) error
	SetRangerStatus(ctx context.Context, id uuid.UUID, status models.RangerStatus) error
}

type BroadcastService interface {
	BroadcastAlert(ctx context.Context, incidentID uuid.UUID, radiusKm float64, customMessage string) (*broadcast.Result, error)
	RegisterSubscriber(ctx context.Context, sub *models.CommunitySubscriber) error
	GetSubscriber(ctx context.Context, phone string) (*models.CommunitySubscriber, error)
}

type ResponseService interface {
	HandleInbound(ctx context.Context, msg models.InboundMessage) (*models.CommunityResponse, error)
	ListResponses(ctx context.Context, incidentID uuid.UUID) ([]models.CommunityResponse, error)
}

type HotspotService interface {
	SyncHotspots(ctx context.Context) (*models.HotspotSyncResult, error)
}
