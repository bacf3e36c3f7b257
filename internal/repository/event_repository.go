package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// EventRepository manages event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// ListVisible returns events not yet past their deleteAt, newest date first.
	ListVisible(ctx context.Context) ([]domain.Event, error)
	Count(ctx context.Context) (int64, error)
	// PurgeExpired removes every event whose deleteAt is not after the database clock.
	PurgeExpired(ctx context.Context) (int64, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository builds the repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `id, title, description, date, location, start_time, end_time, delete_at, created_at, updated_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.StartTime,
		&event.EndTime,
		&event.DeleteAt,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (title, description, date, location, start_time, end_time, delete_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.Location,
		event.StartTime,
		event.EndTime,
		event.DeleteAt,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	return mapPgError(err)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events SET title=$1, description=$2, date=$3, location=$4, start_time=$5,
            end_time=$6, delete_at=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.Location,
		event.StartTime,
		event.EndTime,
		event.DeleteAt,
		event.ID,
	).Scan(&event.UpdatedAt)
	return mapPgError(err)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

func (r *eventRepository) ListVisible(ctx context.Context) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE delete_at IS NULL OR delete_at > NOW()
        ORDER BY date DESC NULLS LAST, created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *event)
	}
	return result, rows.Err()
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

func (r *eventRepository) PurgeExpired(ctx context.Context) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE delete_at IS NOT NULL AND delete_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
