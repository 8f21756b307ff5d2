package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const rangerColumns = `
	id,
	name,
	phone_number,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	status,
	current_incident_id,
	updated_at`

type RangerRepository struct {
	db DB
}

func NewRangerRepository(db DB) *RangerRepository {
	return &RangerRepository{db: db}
}

func scanRanger(row pgx.Row) (*models.Ranger, error) {
	ranger := &models.Ranger{}
	err := row.Scan(
		&ranger.ID,
		&ranger.Name,
		&ranger.PhoneNumber,
		&ranger.Location.Lat,
		&ranger.Location.Lon,
		&ranger.Status,
		&ranger.CurrentIncidentID,
		&ranger.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ranger, nil
}

func collectRangers(rows pgx.Rows) ([]models.Ranger, error) {
	defer rows.Close()
	rangers := make([]models.Ranger, 0)
	for rows.Next() {
		ranger, err := scanRanger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ranger row: %w", err)
		}
		rangers = append(rangers, *ranger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error ranger iteration: %w", err)
	}
	return rangers, nil
}

func (r *RangerRepository) Create(ctx context.Context, ranger *models.Ranger) error {
	point, err := ranger.Location.EWKB()
	if err != nil {
		return fmt.Errorf("failed to encode ranger location: %w", err)
	}
	if ranger.Status == "" {
		ranger.Status = models.RangerAvailable
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO rangers (name, phone_number, location, status)
		VALUES ($1, $2, ST_GeomFromEWKB($3)::geography, $4)
		RETURNING id, updated_at;
	`, ranger.Name, ranger.PhoneNumber, point, ranger.Status).Scan(&ranger.ID, &ranger.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ranger: %w", err)
	}
	return nil
}

func (r *RangerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ranger, error) {
	ranger, err := scanRanger(r.db.QueryRow(ctx, `SELECT `+rangerColumns+` FROM rangers WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ranger %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ranger by id: %w", err)
	}
	return ranger, nil
}

func (r *RangerRepository) List(ctx context.Context) ([]models.Ranger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+rangerColumns+` FROM rangers ORDER BY name, id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rangers: %w", err)
	}
	return collectRangers(rows)
}

// ListAvailable returns rangers that may take a new assignment.
func (r *RangerRepository) ListAvailable(ctx context.Context) ([]models.Ranger, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+rangerColumns+`
		FROM rangers
		WHERE status = 'available' AND current_incident_id IS NULL;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list available rangers: %w", err)
	}
	return collectRangers(rows)
}

func (r *RangerRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location geo.Point) error {
	point, err := location.EWKB()
	if err != nil {
		return fmt.Errorf("failed to encode ranger location: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE rangers SET
			location = ST_GeomFromEWKB($2)::geography,
			updated_at = NOW()
		WHERE id = $1;
	`, id, point)
	if err != nil {
		return fmt.Errorf("failed to update ranger location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ranger %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetDutyStatus changes the status of a ranger that holds no incident. Statuses
// that imply an incident are owned by dispatch and transitions.
func (r *RangerRepository) SetDutyStatus(ctx context.Context, id uuid.UUID, status models.RangerStatus) error {
	if status.HoldsIncident() || !status.Valid() {
		return fmt.Errorf("ranger status %q cannot be set directly", status)
	}
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE rangers SET
			status = $2,
			updated_at = NOW()
		WHERE id = $1 AND current_incident_id IS NULL;
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update ranger status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("ranger %s: %w", id, ErrRangerBusy)
	}
	return nil
}
