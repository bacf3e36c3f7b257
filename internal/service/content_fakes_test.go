package service

import (
	"context"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/repository"
)

type fakeOfferingRepo struct {
	ids   idSeq
	items map[string]*domain.Offering
}

func (r *fakeOfferingRepo) Create(_ context.Context, o *domain.Offering) error {
	o.ID = r.ids.next("svc")
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOfferingRepo) Update(_ context.Context, o *domain.Offering) error {
	if _, ok := r.items[o.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *fakeOfferingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeOfferingRepo) GetByID(_ context.Context, id string) (*domain.Offering, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfferingRepo) List(_ context.Context) ([]domain.Offering, error) {
	out := []domain.Offering{}
	for _, o := range r.items {
		out = append(out, *o)
	}
	return out, nil
}

type fakeMediaRepo struct {
	ids   idSeq
	kind  domain.MediaKind
	items map[string]*domain.Media
}

func (r *fakeMediaRepo) Create(_ context.Context, m *domain.Media) error {
	m.ID = r.ids.next(string(r.kind))
	m.Kind = r.kind
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMediaRepo) Update(_ context.Context, m *domain.Media) error {
	if _, ok := r.items[m.ID]; !ok {
		return repository.ErrNotFound
	}
	m.Kind = r.kind
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMediaRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeMediaRepo) GetByID(_ context.Context, id string) (*domain.Media, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMediaRepo) List(_ context.Context) ([]domain.Media, error) {
	out := []domain.Media{}
	for _, m := range r.items {
		out = append(out, *m)
	}
	return out, nil
}

// fakeAboutRepo holds at most one record, like the singleton table.
type fakeAboutRepo struct {
	ids     idSeq
	current *domain.About
}

func (r *fakeAboutRepo) First(context.Context) (*domain.About, error) {
	if r.current == nil {
		return nil, repository.ErrNotFound
	}
	cp := *r.current
	return &cp, nil
}

func (r *fakeAboutRepo) GetByID(_ context.Context, id string) (*domain.About, error) {
	if r.current == nil || r.current.ID != id {
		return nil, repository.ErrNotFound
	}
	cp := *r.current
	return &cp, nil
}

func (r *fakeAboutRepo) Upsert(_ context.Context, a *domain.About) error {
	if r.current == nil {
		a.ID = r.ids.next("about")
	} else {
		a.ID = r.current.ID
	}
	cp := *a
	r.current = &cp
	return nil
}

func (r *fakeAboutRepo) Update(_ context.Context, a *domain.About) error {
	if r.current == nil || r.current.ID != a.ID {
		return repository.ErrNotFound
	}
	cp := *a
	r.current = &cp
	return nil
}

func (r *fakeAboutRepo) Delete(_ context.Context, id string) error {
	if r.current == nil || r.current.ID != id {
		return repository.ErrNotFound
	}
	r.current = nil
	return nil
}

type fakeContactRepo struct {
	current *domain.ContactInfo
	writes  int
}

func (r *fakeContactRepo) Get(context.Context) (*domain.ContactInfo, error) {
	if r.current == nil {
		return nil, repository.ErrNotFound
	}
	cp := *r.current
	return &cp, nil
}

func (r *fakeContactRepo) Upsert(_ context.Context, c *domain.ContactInfo) error {
	r.writes++
	c.ID = "contact-1"
	cp := *c
	r.current = &cp
	return nil
}

type fakeContent struct {
	offerings *fakeOfferingRepo
	photos    *fakeMediaRepo
	videos    *fakeMediaRepo
	about     *fakeAboutRepo
	contact   *fakeContactRepo
}

func newFakeContent() *fakeContent {
	return &fakeContent{
		offerings: &fakeOfferingRepo{items: map[string]*domain.Offering{}},
		photos:    &fakeMediaRepo{kind: domain.MediaPhoto, items: map[string]*domain.Media{}},
		videos:    &fakeMediaRepo{kind: domain.MediaVideo, items: map[string]*domain.Media{}},
		about:     &fakeAboutRepo{},
		contact:   &fakeContactRepo{},
	}
}

func (f *fakeContent) service() *ContentService {
	return NewContentService(ContentDependencies{
		Offerings: f.offerings,
		Photos:    f.photos,
		Videos:    f.videos,
		About:     f.about,
		Contact:   f.contact,
	})
}
