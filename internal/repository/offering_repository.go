package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// OfferingRepository manages the advertised services.
type OfferingRepository interface {
	Create(ctx context.Context, offering *domain.Offering) error
	Update(ctx context.Context, offering *domain.Offering) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Offering, error)
	List(ctx context.Context) ([]domain.Offering, error)
}

type offeringRepository struct {
	pool *pgxpool.Pool
}

// NewOfferingRepository builds the repository.
func NewOfferingRepository(pool *pgxpool.Pool) OfferingRepository {
	return &offeringRepository{pool: pool}
}

const offeringColumns = `id, name, title, description, image_url, created_at, updated_at`

func scanOffering(row pgx.Row) (*domain.Offering, error) {
	var o domain.Offering
	if err := row.Scan(&o.ID, &o.Name, &o.Title, &o.Description, &o.ImageURL, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &o, nil
}

func (r *offeringRepository) Create(ctx context.Context, offering *domain.Offering) error {
	const query = `
        INSERT INTO services (name, title, description, image_url)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		offering.Name,
		offering.Title,
		offering.Description,
		offering.ImageURL,
	).Scan(&offering.ID, &offering.CreatedAt, &offering.UpdatedAt)
	return mapPgError(err)
}

func (r *offeringRepository) Update(ctx context.Context, offering *domain.Offering) error {
	const query = `
        UPDATE services SET name=$1, title=$2, description=$3, image_url=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		offering.Name,
		offering.Title,
		offering.Description,
		offering.ImageURL,
		offering.ID,
	).Scan(&offering.CreatedAt, &offering.UpdatedAt)
	return mapPgError(err)
}

func (r *offeringRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *offeringRepository) GetByID(ctx context.Context, id string) (*domain.Offering, error) {
	return scanOffering(r.pool.QueryRow(ctx, `SELECT `+offeringColumns+` FROM services WHERE id=$1`, id))
}

func (r *offeringRepository) List(ctx context.Context) ([]domain.Offering, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+offeringColumns+` FROM services ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Offering
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	return result, rows.Err()
}
