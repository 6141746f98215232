package patients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/voicedesk/internal/ids"
)

// querier is the subset of pgxpool.Pool the repository needs; tests
// inject a mock.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores intake records in the relational database.
type PostgresRepository struct {
	db querier
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("patients: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// newPostgresRepositoryWithQuerier allows injecting mocks for tests.
func newPostgresRepositoryWithQuerier(db querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new intake row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateRequest) (*Record, error) {
	status := req.ScreeningStatus
	if status == "" {
		status = ScreeningIncomplete
	}

	id := ids.New(ids.Patient)
	query := `
		INSERT INTO patients (id, name, phone, presenting_issue, screening_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.Name,
		req.Phone,
		req.PresentingIssue,
		status,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("patients: insert failed: %w", err)
	}

	return &Record{
		ID:              id,
		Name:            req.Name,
		Phone:           req.Phone,
		PresentingIssue: req.PresentingIssue,
		ScreeningStatus: status,
		CreatedAt:       createdAt,
	}, nil
}

// GetByID fetches one intake record.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Record, error) {
	query := `
		SELECT id, name, phone, presenting_issue, screening_status, created_at
		FROM patients
		WHERE id = $1
	`
	var record Record
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.Name,
		&record.Phone,
		&record.PresentingIssue,
		&record.ScreeningStatus,
		&record.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("patients: select failed: %w", err)
	}
	return &record, nil
}
