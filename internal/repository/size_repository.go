package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// SizeRepository manages size persistence.
type SizeRepository interface {
	Create(ctx context.Context, size *domain.Size) error
	Update(ctx context.Context, size *domain.Size) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Size, error)
	// List filters by category when categoryID is not empty.
	List(ctx context.Context, categoryID string) ([]domain.Size, error)
}

type sizeRepository struct {
	pool *pgxpool.Pool
}

// NewSizeRepository builds the repository.
func NewSizeRepository(pool *pgxpool.Pool) SizeRepository {
	return &sizeRepository{pool: pool}
}

const sizeColumns = `id, category_id, gender, label, age_range, measure, created_at, updated_at`

func scanSize(row pgx.Row) (*domain.Size, error) {
	var s domain.Size
	if err := row.Scan(&s.ID, &s.CategoryID, &s.Gender, &s.Label, &s.AgeRange, &s.Measure, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &s, nil
}

func (r *sizeRepository) Create(ctx context.Context, size *domain.Size) error {
	const query = `
        INSERT INTO sizes (category_id, gender, label, age_range, measure)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		size.CategoryID,
		size.Gender,
		size.Label,
		size.AgeRange,
		size.Measure,
	).Scan(&size.ID, &size.CreatedAt, &size.UpdatedAt)
	return mapPgError(err)
}

func (r *sizeRepository) Update(ctx context.Context, size *domain.Size) error {
	const query = `
        UPDATE sizes SET category_id=$1, gender=$2, label=$3, age_range=$4, measure=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		size.CategoryID,
		size.Gender,
		size.Label,
		size.AgeRange,
		size.Measure,
		size.ID,
	).Scan(&size.UpdatedAt)
	return mapPgError(err)
}

func (r *sizeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sizes WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sizeRepository) GetByID(ctx context.Context, id string) (*domain.Size, error) {
	return scanSize(r.pool.QueryRow(ctx, `SELECT `+sizeColumns+` FROM sizes WHERE id=$1`, id))
}

func (r *sizeRepository) List(ctx context.Context, categoryID string) ([]domain.Size, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if categoryID == "" {
		rows, err = r.pool.Query(ctx, `SELECT `+sizeColumns+` FROM sizes ORDER BY category_id, label`)
	} else {
		rows, err = r.pool.Query(ctx, `SELECT `+sizeColumns+` FROM sizes WHERE category_id=$1 ORDER BY label`, categoryID)
	}
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var result []domain.Size
	for rows.Next() {
		s, err := scanSize(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	return result, rows.Err()
}
