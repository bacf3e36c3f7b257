package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// ProductRepository manages product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// List filters by locality when localityID is not empty.
	List(ctx context.Context, localityID string) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository builds the repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `id, name, description, locality_id, fabric_type, image_url, size_ids, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.LocalityID,
		&p.FabricType,
		&p.ImageURL,
		&p.SizeIDs,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (name, description, locality_id, fabric_type, image_url, size_ids)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.LocalityID,
		product.FabricType,
		product.ImageURL,
		nonNilStrings(product.SizeIDs),
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	return mapPgError(err)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET name=$1, description=$2, locality_id=$3, fabric_type=$4, image_url=$5,
            size_ids=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.LocalityID,
		product.FabricType,
		product.ImageURL,
		nonNilStrings(product.SizeIDs),
		product.ID,
	).Scan(&product.UpdatedAt)
	return mapPgError(err)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
}

func (r *productRepository) List(ctx context.Context, localityID string) ([]domain.Product, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if localityID == "" {
		rows, err = r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
	} else {
		rows, err = r.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE locality_id=$1 ORDER BY name`, localityID)
	}
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
