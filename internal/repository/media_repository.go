package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// MediaRepository manages one gallery. Every query is scoped to the kind the
// repository was built for, so a photo id never resolves in the video gallery.
type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	Update(ctx context.Context, media *domain.Media) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Media, error)
	List(ctx context.Context) ([]domain.Media, error)
}

type mediaRepository struct {
	pool *pgxpool.Pool
	kind domain.MediaKind
}

// NewMediaRepository builds the repository for one gallery.
func NewMediaRepository(pool *pgxpool.Pool, kind domain.MediaKind) MediaRepository {
	return &mediaRepository{pool: pool, kind: kind}
}

const mediaColumns = `id, kind, url, title, description, created_at, updated_at`

func scanMedia(row pgx.Row) (*domain.Media, error) {
	var m domain.Media
	if err := row.Scan(&m.ID, &m.Kind, &m.URL, &m.Title, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &m, nil
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.Media) error {
	const query = `
        INSERT INTO media (kind, url, title, description)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	media.Kind = r.kind
	err := r.pool.QueryRow(ctx, query,
		string(r.kind),
		media.URL,
		media.Title,
		media.Description,
	).Scan(&media.ID, &media.CreatedAt, &media.UpdatedAt)
	return mapPgError(err)
}

func (r *mediaRepository) Update(ctx context.Context, media *domain.Media) error {
	const query = `
        UPDATE media SET url=$1, title=$2, description=$3, updated_at=NOW()
        WHERE id=$4 AND kind=$5
        RETURNING created_at, updated_at`
	media.Kind = r.kind
	err := r.pool.QueryRow(ctx, query,
		media.URL,
		media.Title,
		media.Description,
		media.ID,
		string(r.kind),
	).Scan(&media.CreatedAt, &media.UpdatedAt)
	return mapPgError(err)
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM media WHERE id=$1 AND kind=$2`, id, string(r.kind))
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	return scanMedia(r.pool.QueryRow(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE id=$1 AND kind=$2`, id, string(r.kind)))
}

func (r *mediaRepository) List(ctx context.Context) ([]domain.Media, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE kind=$1 ORDER BY created_at DESC`, string(r.kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}
