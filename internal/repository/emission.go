package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tervahagn/landing/internal/domain"
)

// EmissionRepository handles database operations for the emission ledger.
type EmissionRepository struct {
	pool *pgxpool.Pool
}

// NewEmissionRepository creates a new EmissionRepository.
func NewEmissionRepository(pool *pgxpool.Pool) *EmissionRepository {
	return &EmissionRepository{pool: pool}
}

// Create stores an emission and fills in its ID and CreatedAt.
func (r *EmissionRepository) Create(ctx context.Context, emission *domain.Emission) error {
	query, args, err := psql.
		Insert("emissions").
		Columns("target_path", "bytes", "fingerprint").
		Values(emission.TargetPath, emission.Bytes, emission.Fingerprint).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&emission.ID, &emission.CreatedAt); err != nil {
		return fmt.Errorf("create emission: %w", err)
	}

	return nil
}

// GetByID retrieves one emission. Malformed IDs are reported as not found.
func (r *EmissionRepository) GetByID(ctx context.Context, id string) (*domain.Emission, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrEmissionNotFound
	}

	query, args, err := psql.
		Select(emissionColumns...).
		From("emissions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for emission %s: %w", id, err)
	}

	return r.scanOne(ctx, query, args)
}

// Latest returns the most recent emission.
func (r *EmissionRepository) Latest(ctx context.Context) (*domain.Emission, error) {
	query, args, err := psql.
		Select(emissionColumns...).
		From("emissions").
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Latest query: %w", err)
	}

	return r.scanOne(ctx, query, args)
}

// List returns up to limit emissions, newest first.
func (r *EmissionRepository) List(ctx context.Context, limit uint64) ([]*domain.Emission, error) {
	query, args, err := psql.
		Select(emissionColumns...).
		From("emissions").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query emissions: %w", err)
	}
	defer rows.Close()

	var emissions []*domain.Emission
	for rows.Next() {
		var e domain.Emission
		if err := rows.Scan(&e.ID, &e.TargetPath, &e.Bytes, &e.Fingerprint, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan emission: %w", err)
		}
		emissions = append(emissions, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return emissions, nil
}

func (r *EmissionRepository) scanOne(ctx context.Context, query string, args []interface{}) (*domain.Emission, error) {
	var e domain.Emission
	err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.TargetPath, &e.Bytes, &e.Fingerprint, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmissionNotFound
		}
		return nil, fmt.Errorf("query emission: %w", err)
	}
	return &e, nil
}
