package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CommunityRepository struct {
	db DB
}

func NewCommunityRepository(db DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// UpsertSubscriber registers a phone number or moves it to a new location.
func (r *CommunityRepository) UpsertSubscriber(ctx context.Context, sub *models.CommunitySubscriber) error {
	point, err := sub.Location.EWKB()
	if err != nil {
		return fmt.Errorf("failed to encode subscriber location: %w", err)
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO community_subscribers (phone_number, location)
		VALUES ($1, ST_GeomFromEWKB($2)::geography)
		ON CONFLICT (phone_number) DO UPDATE SET location = EXCLUDED.location
		RETURNING created_at;
	`, sub.PhoneNumber, point).Scan(&sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert subscriber: %w", err)
	}
	return nil
}

func (r *CommunityRepository) GetSubscriberByPhone(ctx context.Context, phone string) (*models.CommunitySubscriber, error) {
	sub := &models.CommunitySubscriber{}
	err := r.db.QueryRow(ctx, `
		SELECT
			phone_number,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			created_at
		FROM community_subscribers
		WHERE phone_number = $1;
	`, phone).Scan(&sub.PhoneNumber, &sub.Location.Lat, &sub.Location.Lon, &sub.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subscriber %s: %w", phone, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return sub, nil
}

// ListSubscribersInBox is the coarse pre-filter for broadcasts; the exact radius
// test happens in memory.
func (r *CommunityRepository) ListSubscribersInBox(ctx context.Context, box geo.BBox) ([]models.CommunitySubscriber, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			phone_number,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			created_at
		FROM community_subscribers
		WHERE location::geometry && ST_MakeEnvelope($1, $2, $3, $4, 4326)
		ORDER BY created_at, phone_number;
	`, box.MinLon, box.MinLat, box.MaxLon, box.MaxLat)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subs := make([]models.CommunitySubscriber, 0)
	for rows.Next() {
		var sub models.CommunitySubscriber
		if err := rows.Scan(&sub.PhoneNumber, &sub.Location.Lat, &sub.Location.Lon, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error subscriber iteration: %w", err)
	}
	return subs, nil
}

func (r *CommunityRepository) SaveBroadcast(ctx context.Context, b *models.AlertBroadcast) error {
	recipients := b.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO alert_broadcasts (incident_id, message, recipients, radius_km)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sent_at;
	`, b.IncidentID, b.Message, recipients, b.RadiusKm).Scan(&b.ID, &b.SentAt)
	if err != nil {
		return fmt.Errorf("failed to save broadcast: %w", err)
	}
	return nil
}

// ListBroadcastsForPhone returns broadcasts that reached phone since the given time, newest first.
func (r *CommunityRepository) ListBroadcastsForPhone(ctx context.Context, phone string, since time.Time) ([]models.AlertBroadcast, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, incident_id, message, recipients, radius_km, sent_at
		FROM alert_broadcasts
		WHERE $1 = ANY(recipients) AND sent_at >= $2
		ORDER BY sent_at DESC;
	`, phone, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcasts: %w", err)
	}
	defer rows.Close()

	broadcasts := make([]models.AlertBroadcast, 0)
	for rows.Next() {
		var b models.AlertBroadcast
		if err := rows.Scan(&b.ID, &b.IncidentID, &b.Message, &b.Recipients, &b.RadiusKm, &b.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan broadcast row: %w", err)
		}
		broadcasts = append(broadcasts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error broadcast iteration: %w", err)
	}
	return broadcasts, nil
}

// SaveResponse appends a community response. Responses are never updated.
func (r *CommunityRepository) SaveResponse(ctx context.Context, resp *models.CommunityResponse) error {
	if !resp.Response.Valid() {
		return fmt.Errorf("unknown response kind %q", resp.Response)
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO community_responses (incident_id, phone_number, response, message, channel)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, responded_at;
	`, resp.IncidentID, resp.PhoneNumber, resp.Response, resp.Message, resp.Channel).Scan(&resp.ID, &resp.RespondedAt)
	if err != nil {
		return fmt.Errorf("failed to save community response: %w", err)
	}
	return nil
}

func (r *CommunityRepository) ListResponses(ctx context.Context, incidentID uuid.UUID) ([]models.CommunityResponse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, incident_id, phone_number, response, message, channel, responded_at
		FROM community_responses
		WHERE incident_id = $1
		ORDER BY responded_at DESC;
	`, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list community responses: %w", err)
	}
	defer rows.Close()

	responses := make([]models.CommunityResponse, 0)
	for rows.Next() {
		var resp models.CommunityResponse
		if err := rows.Scan(&resp.ID, &resp.IncidentID, &resp.PhoneNumber, &resp.Response, &resp.Message, &resp.Channel, &resp.RespondedAt); err != nil {
			return nil, fmt.Errorf("failed to scan community response row: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error community response iteration: %w", err)
	}
	return responses, nil
}
