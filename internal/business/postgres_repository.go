package business

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwell/voicedesk/internal/ids"
)

// querier is the subset of pgxpool.Pool used here; pgxmock satisfies it.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores profiles in a business_info table.
type PostgresRepository struct {
	db querier
}

// NewPostgresRepository creates a repository backed by the given pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("business: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

func newPostgresRepositoryWithQuerier(db querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const infoColumns = "id, name, phone, address, email, website, description, created_at, updated_at"

// Save inserts the profile, assigning an ID if none is set.
func (r *PostgresRepository) Save(ctx context.Context, info *Info) error {
	if info.ID == "" {
		info.ID = ids.New(ids.Business)
	}
	now := time.Now().UTC()
	if info.CreatedAt.IsZero() {
		info.CreatedAt = now
	}
	info.UpdatedAt = now

	const query = `
		INSERT INTO business_info (id, name, phone, address, email, website, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		info.ID, info.Name, info.Phone, info.Address,
		info.Email, info.Website, info.Description,
		info.CreatedAt, info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("business: insert profile: %w", err)
	}
	return nil
}

// Get returns the profile with the given ID, or ErrNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Info, error) {
	row := r.db.QueryRow(ctx, "SELECT "+infoColumns+" FROM business_info WHERE id = $1", id)
	info, err := scanInfo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("business: get profile: %w", err)
	}
	return info, nil
}

// List returns every profile, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Info, error) {
	rows, err := r.db.Query(ctx, "SELECT "+infoColumns+" FROM business_info ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("business: list profiles: %w", err)
	}
	defer rows.Close()

	var out []*Info
	for rows.Next() {
		info, err := scanInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("business: scan profile: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Update applies the non-empty fields of updates and returns the
// resulting profile.
func (r *PostgresRepository) Update(ctx context.Context, id string, updates Updates) (*Info, error) {
	const query = `
		UPDATE business_info SET
			name = COALESCE(NULLIF($2, ''), name),
			phone = COALESCE(NULLIF($3, ''), phone),
			address = COALESCE(NULLIF($4, ''), address),
			email = COALESCE(NULLIF($5, ''), email),
			website = COALESCE(NULLIF($6, ''), website),
			description = COALESCE(NULLIF($7, ''), description),
			updated_at = $8
		WHERE id = $1
		RETURNING ` + infoColumns
	row := r.db.QueryRow(ctx, query, id,
		updates.Name, updates.Phone, updates.Address,
		updates.Email, updates.Website, updates.Description,
		time.Now().UTC(),
	)
	info, err := scanInfo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("business: update profile: %w", err)
	}
	return info, nil
}

// Delete removes the profile with the given ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM business_info WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("business: delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanInfo(row pgx.Row) (*Info, error) {
	var info Info
	err := row.Scan(
		&info.ID, &info.Name, &info.Phone, &info.Address,
		&info.Email, &info.Website, &info.Description,
		&info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
