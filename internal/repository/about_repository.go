package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// AboutRepository manages the mission and vision record.
type AboutRepository interface {
	// First returns the record, or ErrNotFound when none was saved yet.
	First(ctx context.Context) (*domain.About, error)
	GetByID(ctx context.Context, id string) (*domain.About, error)
	// Upsert creates the record or overwrites the existing one.
	Upsert(ctx context.Context, about *domain.About) error
	Update(ctx context.Context, about *domain.About) error
	Delete(ctx context.Context, id string) error
}

type aboutRepository struct {
	pool *pgxpool.Pool
}

// NewAboutRepository builds the repository.
func NewAboutRepository(pool *pgxpool.Pool) AboutRepository {
	return &aboutRepository{pool: pool}
}

const aboutColumns = `id, mission, vision, created_at, updated_at`

func scanAbout(row pgx.Row) (*domain.About, error) {
	var a domain.About
	if err := row.Scan(&a.ID, &a.Mission, &a.Vision, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &a, nil
}

func (r *aboutRepository) First(ctx context.Context) (*domain.About, error) {
	return scanAbout(r.pool.QueryRow(ctx, `SELECT `+aboutColumns+` FROM about LIMIT 1`))
}

func (r *aboutRepository) GetByID(ctx context.Context, id string) (*domain.About, error) {
	return scanAbout(r.pool.QueryRow(ctx, `SELECT `+aboutColumns+` FROM about WHERE id=$1`, id))
}

func (r *aboutRepository) Upsert(ctx context.Context, about *domain.About) error {
	const query = `
        INSERT INTO about (mission, vision)
        VALUES ($1,$2)
        ON CONFLICT (singleton) DO UPDATE
        SET mission=EXCLUDED.mission, vision=EXCLUDED.vision, updated_at=NOW()
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, about.Mission, about.Vision).
		Scan(&about.ID, &about.CreatedAt, &about.UpdatedAt)
	return mapPgError(err)
}

func (r *aboutRepository) Update(ctx context.Context, about *domain.About) error {
	const query = `
        UPDATE about SET mission=$1, vision=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, about.Mission, about.Vision, about.ID).
		Scan(&about.CreatedAt, &about.UpdatedAt)
	return mapPgError(err)
}

func (r *aboutRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM about WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
