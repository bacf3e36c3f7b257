package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// ContactRepository stores the single contact record.
type ContactRepository interface {
	// Get returns ErrNotFound until the record is first saved.
	Get(ctx context.Context) (*domain.ContactInfo, error)
	Upsert(ctx context.Context, info *domain.ContactInfo) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository builds the repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Get(ctx context.Context) (*domain.ContactInfo, error) {
	const query = `
        SELECT id, phone, email, address, hours, facebook, whatsapp, updated_at
        FROM contact_info LIMIT 1`
	var c domain.ContactInfo
	err := r.pool.QueryRow(ctx, query).Scan(
		&c.ID, &c.Phone, &c.Email, &c.Address, &c.Hours, &c.Facebook, &c.WhatsApp, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err)
	}
	return &c, nil
}

func (r *contactRepository) Upsert(ctx context.Context, info *domain.ContactInfo) error {
	const query = `
        INSERT INTO contact_info (phone, email, address, hours, facebook, whatsapp)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (singleton) DO UPDATE
        SET phone=EXCLUDED.phone, email=EXCLUDED.email, address=EXCLUDED.address,
            hours=EXCLUDED.hours, facebook=EXCLUDED.facebook, whatsapp=EXCLUDED.whatsapp,
            updated_at=NOW()
        RETURNING id, updated_at`
	err := r.pool.QueryRow(ctx, query,
		info.Phone,
		info.Email,
		info.Address,
		info.Hours,
		info.Facebook,
		info.WhatsApp,
	).Scan(&info.ID, &info.UpdatedAt)
	return mapPgError(err)
}
