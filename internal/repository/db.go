package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrAssignmentConflict means the incident or the ranger changed between read and assignment.
	ErrAssignmentConflict = errors.New("assignment conflict")
	// ErrStatusConflict means the incident status changed between read and transition.
	ErrStatusConflict = errors.New("status conflict")
	// ErrRangerBusy means the ranger holds an incident and its duty status cannot be changed.
	ErrRangerBusy = errors.New("ranger holds an active incident")
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}
