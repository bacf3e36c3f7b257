package service

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/repository"
)

type idSeq struct {
	mu sync.Mutex
	n  int
}

func (s *idSeq) next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return prefix + "-" + strconv.Itoa(s.n)
}

type fakeUserRepo struct {
	ids   idSeq
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.ids.next("user")
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeEventRepo struct {
	ids    idSeq
	events map[string]*domain.Event
	writes int
	now    func() time.Time
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*domain.Event{}, now: time.Now}
}

func (r *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.writes++
	event.ID = r.ids.next("event")
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *domain.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return repository.ErrNotFound
	}
	r.writes++
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEventRepo) ListVisible(_ context.Context) ([]domain.Event, error) {
	now := r.now()
	out := []domain.Event{}
	for _, e := range r.events {
		if e.DeleteAt == nil || e.DeleteAt.After(now) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

func (r *fakeEventRepo) PurgeExpired(_ context.Context) (int64, error) {
	now := r.now()
	var n int64
	for id, e := range r.events {
		if e.DeleteAt != nil && !e.DeleteAt.After(now) {
			delete(r.events, id)
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	ids   idSeq
	items map[string]*domain.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	c.ID = r.ids.next("cat")
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.items[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := []domain.Category{}
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

type fakeLocalityRepo struct {
	ids        idSeq
	items      map[string]*domain.Locality
	referenced map[string]bool
}

func (r *fakeLocalityRepo) Create(_ context.Context, l *domain.Locality) error {
	for _, existing := range r.items {
		if existing.Name == l.Name {
			return repository.ErrDuplicate
		}
	}
	l.ID = r.ids.next("loc")
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLocalityRepo) Update(_ context.Context, l *domain.Locality) error {
	if _, ok := r.items[l.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLocalityRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	if r.referenced[id] {
		return repository.ErrMissingReference
	}
	delete(r.items, id)
	return nil
}

func (r *fakeLocalityRepo) GetByID(_ context.Context, id string) (*domain.Locality, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLocalityRepo) List(_ context.Context) ([]domain.Locality, error) {
	out := []domain.Locality{}
	for _, l := range r.items {
		out = append(out, *l)
	}
	return out, nil
}

type fakeSizeRepo struct {
	ids   idSeq
	items map[string]*domain.Size
}

func (r *fakeSizeRepo) Create(_ context.Context, s *domain.Size) error {
	s.ID = r.ids.next("size")
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSizeRepo) Update(_ context.Context, s *domain.Size) error {
	if _, ok := r.items[s.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSizeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeSizeRepo) GetByID(_ context.Context, id string) (*domain.Size, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSizeRepo) List(_ context.Context, categoryID string) ([]domain.Size, error) {
	out := []domain.Size{}
	for _, s := range r.items {
		if categoryID == "" || s.CategoryID == categoryID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	ids   idSeq
	items map[string]*domain.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	p.ID = r.ids.next("prod")
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context, localityID string) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range r.items {
		if localityID == "" || p.LocalityID == localityID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type fakeCatalog struct {
	categories *fakeCategoryRepo
	localities *fakeLocalityRepo
	sizes      *fakeSizeRepo
	products   *fakeProductRepo
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: &fakeCategoryRepo{items: map[string]*domain.Category{}},
		localities: &fakeLocalityRepo{items: map[string]*domain.Locality{}, referenced: map[string]bool{}},
		sizes:      &fakeSizeRepo{items: map[string]*domain.Size{}},
		products:   &fakeProductRepo{items: map[string]*domain.Product{}},
	}
}

func (f *fakeCatalog) service() *CatalogService {
	return NewCatalogService(CatalogDependencies{
		Categories: f.categories,
		Localities: f.localities,
		Sizes:      f.sizes,
		Products:   f.products,
	})
}
