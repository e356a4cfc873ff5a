package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"immowert_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ── Domain Models ─────────────────────────────────────────────────────────────

// Submission is the database model for a stored valuation submission.
// Input and Result hold the normalized request and the computed result
// verbatim as JSON; the scalar columns exist for listing and filtering.
type Submission struct {
	ID              uuid.UUID       `db:"id"`
	PropertyType    string          `db:"property_type"`
	Address         string          `db:"address"`
	City            string          `db:"city"`
	Price           string          `db:"price"`
	Input           json.RawMessage `db:"input"`
	Result          json.RawMessage `db:"result"`
	DefaultsApplied []string        `db:"defaults_applied"`
	CreatedAt       time.Time       `db:"created_at"`
}

// ── Repository ────────────────────────────────────────────────────────────────

// Repository provides database operations for valuation submissions
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create stores a submission. The caller assigns the ID so the same
// identifier can be reused in the published completion event.
func (r *Repository) Create(ctx context.Context, s Submission) error {
	query := `
		INSERT INTO valuation_submissions
			(id, property_type, address, city, price, input, result, defaults_applied, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.PropertyType, s.Address, s.City, s.Price,
		s.Input, s.Result, s.DefaultsApplied, s.CreatedAt,
	)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to store submission", fmt.Errorf("insert valuation_submissions: %w", err))
	}
	return nil
}

// ListRecent returns the most recent submissions, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT id, property_type, address, city, price, input, result, defaults_applied, created_at
		FROM valuation_submissions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list submissions", fmt.Errorf("select valuation_submissions: %w", err))
	}
	defer rows.Close()

	var submissions []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.PropertyType, &s.Address, &s.City, &s.Price,
			&s.Input, &s.Result, &s.DefaultsApplied, &s.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan submission", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to read submissions", err)
	}

	return submissions, nil
}
