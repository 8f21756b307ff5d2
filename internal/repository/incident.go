package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/lifecycle"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

const incidentColumns = `
	id,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	threat_type,
	severity,
	source,
	description,
	verified,
	status,
	assigned_ranger_id,
	eta_minutes,
	sender_phone,
	created_at,
	assigned_at,
	responded_at,
	resolved_at,
	updated_at`

type IncidentRepository struct {
	db          DB
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db DB, redisClient *redis.Client, cacheTTL time.Duration) *IncidentRepository {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Location.Lat,
		&incident.Location.Lon,
		&incident.ThreatType,
		&incident.Severity,
		&incident.Source,
		&incident.Description,
		&incident.Verified,
		&incident.Status,
		&incident.AssignedRangerID,
		&incident.ETAMinutes,
		&incident.SenderPhone,
		&incident.CreatedAt,
		&incident.AssignedAt,
		&incident.RespondedAt,
		&incident.ResolvedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows) ([]models.Incident, error) {
	defer rows.Close()
	incidents := make([]models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, *incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// Create inserts a reported incident and fills its id and timestamps.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	point, err := incident.Location.EWKB()
	if err != nil {
		return fmt.Errorf("failed to encode incident location: %w", err)
	}
	query := `
		INSERT INTO incidents (location, threat_type, severity, source, description, verified, status, sender_phone)
		VALUES (ST_GeomFromEWKB($1)::geography, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		point,
		incident.ThreatType,
		incident.Severity,
		incident.Source,
		incident.Description,
		incident.Verified,
		models.StatusReported,
		incident.SenderPhone,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	incident.Status = models.StatusReported
	return nil
}

func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListIncidents returns a page of incidents, newest first, optionally filtered by status.
func (r *IncidentRepository) ListIncidents(ctx context.Context, page, pageSize int, status *models.IncidentStatus) ([]models.Incident, error) {
	offset := (page - 1) * pageSize
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE ($3::text IS NULL OR status = $3)
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows)
}

// ListRecent returns incidents created at or after since, newest first.
func (r *IncidentRepository) ListRecent(ctx context.Context, since time.Time, limit int) ([]models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent incidents: %w", err)
	}
	return collectIncidents(rows)
}

// ListByIDPrefix returns incidents whose id starts with prefix, newest first. prefix
// is the hex-and-dash short reference printed in alerts, matched case-insensitively.
func (r *IncidentRepository) ListByIDPrefix(ctx context.Context, prefix string, limit int) ([]models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE id::text LIKE $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, strings.ToLower(prefix)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by id prefix: %w", err)
	}
	return collectIncidents(rows)
}

// ListRecentBySource returns incidents of one intake source created at or after since.
func (r *IncidentRepository) ListRecentBySource(ctx context.Context, source models.Source, since time.Time) ([]models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE source = $1 AND created_at >= $2
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, source, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by source: %w", err)
	}
	return collectIncidents(rows)
}

// FindNearby returns open incidents within radiusKm of center, nearest first.
func (r *IncidentRepository) FindNearby(ctx context.Context, center geo.Point, radiusKm float64) ([]models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE
			status NOT IN ('resolved', 'false_alarm')
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography);
	`
	rows, err := r.db.Query(ctx, query, center.Lon, center.Lat, radiusKm*1000)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby incidents: %w", err)
	}
	return collectIncidents(rows)
}

// AssignRanger links a reported incident and an available ranger in one transaction.
// Both updates are conditional on the state the matcher saw; if either row moved
// on, nothing is written and ErrAssignmentConflict is returned.
func (r *IncidentRepository) AssignRanger(ctx context.Context, assigned *models.Incident) error {
	if assigned.AssignedRangerID == nil {
		return fmt.Errorf("assign ranger: incident %s has no ranger", assigned.ID)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin assignment: %w", err)
	}

	if err := assignInTx(ctx, tx, assigned); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit assignment: %w", err)
	}
	return nil
}

func assignInTx(ctx context.Context, tx pgx.Tx, assigned *models.Incident) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE incidents SET
			status = $2,
			assigned_ranger_id = $3,
			eta_minutes = $4,
			assigned_at = $5,
			updated_at = $6
		WHERE id = $1 AND status = 'reported' AND assigned_ranger_id IS NULL;
	`,
		assigned.ID,
		assigned.Status,
		assigned.AssignedRangerID,
		assigned.ETAMinutes,
		assigned.AssignedAt,
		assigned.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to assign incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s is no longer unassigned: %w", assigned.ID, ErrAssignmentConflict)
	}

	cmdTag, err = tx.Exec(ctx, `
		UPDATE rangers SET
			status = 'en_route',
			current_incident_id = $2,
			updated_at = $3
		WHERE id = $1 AND status = 'available' AND current_incident_id IS NULL;
	`,
		*assigned.AssignedRangerID,
		assigned.ID,
		assigned.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to claim ranger: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ranger %s is no longer available: %w", *assigned.AssignedRangerID, ErrAssignmentConflict)
	}
	return nil
}

// ApplyTransition writes a status change produced by lifecycle.Apply. The update
// only lands if the stored status is still from; the ranger side effects share the
// transaction.
func (r *IncidentRepository) ApplyTransition(ctx context.Context, updated *models.Incident, from models.IncidentStatus, fx lifecycle.Effects) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transition: %w", err)
	}

	if err := transitionInTx(ctx, tx, updated, from, fx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}
	return nil
}

func transitionInTx(ctx context.Context, tx pgx.Tx, updated *models.Incident, from models.IncidentStatus, fx lifecycle.Effects) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE incidents SET
			status = $2,
			assigned_ranger_id = $3,
			eta_minutes = $4,
			assigned_at = $5,
			responded_at = $6,
			resolved_at = $7,
			updated_at = $8
		WHERE id = $1 AND status = $9;
	`,
		updated.ID,
		updated.Status,
		updated.AssignedRangerID,
		updated.ETAMinutes,
		updated.AssignedAt,
		updated.RespondedAt,
		updated.ResolvedAt,
		updated.UpdatedAt,
		from,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s is no longer %s: %w", updated.ID, from, ErrStatusConflict)
	}

	switch {
	case fx.ReleaseRanger && fx.RangerID != nil:
		_, err = tx.Exec(ctx, `
			UPDATE rangers SET
				status = 'available',
				current_incident_id = NULL,
				updated_at = $3
			WHERE id = $1 AND current_incident_id = $2;
		`, *fx.RangerID, updated.ID, updated.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to release ranger: %w", err)
		}
	case updated.AssignedRangerID != nil && (updated.Status == models.StatusEnRoute || updated.Status == models.StatusOnScene):
		// ranger duty status follows the incident while it is held
		_, err = tx.Exec(ctx, `
			UPDATE rangers SET
				status = $2,
				updated_at = $4
			WHERE id = $1 AND current_incident_id = $3;
		`, *updated.AssignedRangerID, models.RangerStatus(updated.Status), updated.ID, updated.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to update ranger status: %w", err)
		}
	}
	return nil
}

// SetVerified records an admin verification decision.
func (r *IncidentRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE incidents SET
			verified = $2,
			updated_at = NOW()
		WHERE id = $1;
	`, id, verified)
	if err != nil {
		return fmt.Errorf("failed to verify incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetStats counts incidents per status.
func (r *IncidentRepository) GetStats(ctx context.Context) (*models.IncidentStats, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM incidents GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident stats: %w", err)
	}
	defer rows.Close()

	stats := &models.IncidentStats{ByStatus: make(map[models.IncidentStatus]int, len(models.IncidentStatuses))}
	for _, s := range models.IncidentStatuses {
		stats.ByStatus[s] = 0
	}
	for rows.Next() {
		var (
			status models.IncidentStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
		if status.Open() {
			stats.Open += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache returns nil, nil on a cache miss.
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
