package http

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/repository"
)

// memTable is a keyed in-memory table; key points at the id field of a row.
type memTable[T any] struct {
	mu   sync.Mutex
	rows map[string]T
	key  func(*T) *string
}

func newMemTable[T any](key func(*T) *string) *memTable[T] {
	return &memTable[T]{rows: map[string]T{}, key: key}
}

func (m *memTable[T]) create(row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.key(row) = uuid.NewString()
	m.rows[*m.key(row)] = *row
	return nil
}

func (m *memTable[T]) update(row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := *m.key(row)
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	m.rows[id] = *row
	return nil
}

func (m *memTable[T]) delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memTable[T]) get(id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

// list returns the rows accepted by keep, or all of them when keep is nil.
func (m *memTable[T]) list(keep func(T) bool) []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if keep == nil || keep(m.rows[id]) {
			out = append(out, m.rows[id])
		}
	}
	return out
}

type memCategories struct{ *memTable[domain.Category] }

func (m memCategories) Create(_ context.Context, c *domain.Category) error { return m.create(c) }
func (m memCategories) Update(_ context.Context, c *domain.Category) error { return m.update(c) }
func (m memCategories) Delete(_ context.Context, id string) error { return m.delete(id) }
func (m memCategories) GetByID(_ context.Context, id string) (*domain.Category, error) {
	return m.get(id)
}
func (m memCategories) List(context.Context) ([]domain.Category, error) { return m.list(nil), nil }

type memLocalities struct{ *memTable[domain.Locality] }

func (m memLocalities) Create(_ context.Context, l *domain.Locality) error { return m.create(l) }
func (m memLocalities) Update(_ context.Context, l *domain.Locality) error { return m.update(l) }
func (m memLocalities) Delete(_ context.Context, id string) error { return m.delete(id) }
func (m memLocalities) GetByID(_ context.Context, id string) (*domain.Locality, error) {
	return m.get(id)
}
func (m memLocalities) List(context.Context) ([]domain.Locality, error) { return m.list(nil), nil }

type memSizes struct{ *memTable[domain.Size] }

func (m memSizes) Create(_ context.Context, s *domain.Size) error { return m.create(s) }
func (m memSizes) Update(_ context.Context, s *domain.Size) error { return m.update(s) }
func (m memSizes) Delete(_ context.Context, id string) error { return m.delete(id) }
func (m memSizes) GetByID(_ context.Context, id string) (*domain.Size, error) {
	return m.get(id)
}
func (m memSizes) List(_ context.Context, categoryID string) ([]domain.Size, error) {
	return m.list(func(s domain.Size) bool { return categoryID == "" || s.CategoryID == categoryID }), nil
}

type memProducts struct{ *memTable[domain.Product] }

func (m memProducts) Create(_ context.Context, p *domain.Product) error { return m.create(p) }
func (m memProducts) Update(_ context.Context, p *domain.Product) error { return m.update(p) }
func (m memProducts) Delete(_ context.Context, id string) error { return m.delete(id) }
func (m memProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	return m.get(id)
}
func (m memProducts) List(_ context.Context, localityID string) ([]domain.Product, error) {
	return m.list(func(p domain.Product) bool { return localityID == "" || p.LocalityID == localityID }), nil
}
func (m memProducts) Count(context.Context) (int64, error) { return int64(len(m.list(nil))), nil }

type memOfferings struct{ *memTable[domain.Offering] }

func (m memOfferings) Create(_ context.Context, o *domain.Offering) error { return m.create(o) }
func (m memOfferings) Update(_ context.Context, o *domain.Offering) error { return m.update(o) }
func (m memOfferings) Delete(_ context.Context, id string) error { return m.delete(id) }
func (m memOfferings) GetByID(_ context.Context, id string) (*domain.Offering, error) {
	return m.get(id)
}
func (m memOfferings) List(context.Context) ([]domain.Offering, error) { return m.list(nil), nil }

type memMedia struct {
	*memTable[domain.Media]
	kind domain.MediaKind
}

func (m memMedia) Create(_ context.Context, v *domain.Media) error {
	v.Kind = m.kind
	return m.create(v)
}

func (m memMedia) Update(_ context.Context, v *domain.Media) error {
	v.Kind = m.kind
	return m.update(v)
}

func (m memMedia) Delete(_ context.Context, id string) error { return m.delete(id) }
func (m memMedia) GetByID(_ context.Context, id string) (*domain.Media, error) {
	return m.get(id)
}
func (m memMedia) List(context.Context) ([]domain.Media, error) { return m.list(nil), nil }

// memAbout keeps a single record, like the singleton table.
type memAbout struct {
	mu      sync.Mutex
	current *domain.About
}

func (m *memAbout) First(context.Context) (*domain.About, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, repository.ErrNotFound
	}
	cp := *m.current
	return &cp, nil
}

func (m *memAbout) GetByID(ctx context.Context, id string) (*domain.About, error) {
	a, err := m.First(ctx)
	if err != nil || a.ID != id {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (m *memAbout) Upsert(_ context.Context, a *domain.About) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		a.ID = uuid.NewString()
	} else {
		a.ID = m.current.ID
	}
	cp := *a
	m.current = &cp
	return nil
}

func (m *memAbout) Update(_ context.Context, a *domain.About) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.ID != a.ID {
		return repository.ErrNotFound
	}
	cp := *a
	m.current = &cp
	return nil
}

func (m *memAbout) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.ID != id {
		return repository.ErrNotFound
	}
	m.current = nil
	return nil
}

type memContact struct {
	mu      sync.Mutex
	current *domain.ContactInfo
}

func (m *memContact) Get(context.Context) (*domain.ContactInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, repository.ErrNotFound
	}
	cp := *m.current
	return &cp, nil
}

func (m *memContact) Upsert(_ context.Context, c *domain.ContactInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		c.ID = uuid.NewString()
	} else {
		c.ID = m.current.ID
	}
	cp := *c
	m.current = &cp
	return nil
}
