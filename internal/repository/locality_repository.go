package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// LocalityRepository manages locality persistence. Names are unique.
type LocalityRepository interface {
	Create(ctx context.Context, locality *domain.Locality) error
	Update(ctx context.Context, locality *domain.Locality) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Locality, error)
	List(ctx context.Context) ([]domain.Locality, error)
}

type localityRepository struct {
	pool *pgxpool.Pool
}

// NewLocalityRepository builds the repository.
func NewLocalityRepository(pool *pgxpool.Pool) LocalityRepository {
	return &localityRepository{pool: pool}
}

const localityColumns = `id, name, description, created_at, updated_at`

func scanLocality(row pgx.Row) (*domain.Locality, error) {
	var l domain.Locality
	if err := row.Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &l, nil
}

func (r *localityRepository) Create(ctx context.Context, locality *domain.Locality) error {
	const query = `
        INSERT INTO localities (name, description)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, locality.Name, locality.Description).
		Scan(&locality.ID, &locality.CreatedAt, &locality.UpdatedAt)
	return mapPgError(err)
}

func (r *localityRepository) Update(ctx context.Context, locality *domain.Locality) error {
	const query = `
        UPDATE localities SET name=$1, description=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query, locality.Name, locality.Description, locality.ID).
		Scan(&locality.UpdatedAt)
	return mapPgError(err)
}

func (r *localityRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM localities WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *localityRepository) GetByID(ctx context.Context, id string) (*domain.Locality, error) {
	return scanLocality(r.pool.QueryRow(ctx, `SELECT `+localityColumns+` FROM localities WHERE id=$1`, id))
}

func (r *localityRepository) List(ctx context.Context) ([]domain.Locality, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+localityColumns+` FROM localities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Locality
	for rows.Next() {
		l, err := scanLocality(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *l)
	}
	return result, rows.Err()
}
