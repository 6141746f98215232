package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/voicedesk/internal/ids"
)

// querier is the subset of pgxpool.Pool used here; pgxmock satisfies it.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores assessments in Postgres.
type PostgresRepository struct {
	db querier
}

// NewPostgresRepository creates a repository backed by the given pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("risk: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

func newPostgresRepositoryWithQuerier(db querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the assessment, assigning an ID if none is set.
func (r *PostgresRepository) Create(ctx context.Context, a *Assessment) error {
	if a.ID == "" {
		a.ID = ids.New(ids.RiskAssessment)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO risk_assessments (id, patient_name, level, suicide_risk, self_harm_risk, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.Exec(ctx, query, a.ID, a.PatientName, string(a.Level), a.SuicideRisk, a.SelfHarmRisk, a.Notes, a.CreatedAt); err != nil {
		return fmt.Errorf("risk: insert assessment: %w", err)
	}
	return nil
}
