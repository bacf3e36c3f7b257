package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/repository"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

// ContentService manages the site content: services, galleries, about us and contact.
type ContentService struct {
	offerings repository.OfferingRepository
	galleries map[domain.MediaKind]repository.MediaRepository
	about     repository.AboutRepository
	contact   repository.ContactRepository
	logger    *zap.Logger
}

// ContentDependencies bundles the content repositories.
type ContentDependencies struct {
	Offerings repository.OfferingRepository
	Photos    repository.MediaRepository
	Videos    repository.MediaRepository
	About     repository.AboutRepository
	Contact   repository.ContactRepository
	Logger    *zap.Logger
}

// NewContentService builds the service.
func NewContentService(deps ContentDependencies) *ContentService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{
		offerings: deps.Offerings,
		galleries: map[domain.MediaKind]repository.MediaRepository{
			domain.MediaPhoto: deps.Photos,
			domain.MediaVideo: deps.Videos,
		},
		about:   deps.About,
		contact: deps.Contact,
		logger:  logger,
	}
}

func (s *ContentService) logged(err error, action, resource, id string) error {
	if err == nil {
		s.logger.Info("content "+action, zap.String("resource", resource), zap.String("id", id))
	}
	return err
}

// Services

func (s *ContentService) ListOfferings(ctx context.Context) ([]domain.Offering, error) {
	return s.offerings.List(ctx)
}

func (s *ContentService) GetOffering(ctx context.Context, id string) (*domain.Offering, error) {
	o, err := s.offerings.GetByID(ctx, id)
	return o, notFound(err, "Servicio", id)
}

// SaveOffering needs at least a name or a title.
func (s *ContentService) SaveOffering(ctx context.Context, o *domain.Offering) error {
	o.Name = strings.TrimSpace(o.Name)
	o.Title = strings.TrimSpace(o.Title)
	if o.Name == "" && o.Title == "" {
		return required("name")
	}
	var err error
	if o.ID == "" {
		err = s.offerings.Create(ctx, o)
	} else {
		err = notFound(s.offerings.Update(ctx, o), "Servicio", o.ID)
	}
	return s.logged(err, "saved", "service", o.ID)
}

func (s *ContentService) DeleteOffering(ctx context.Context, id string) error {
	return s.logged(notFound(s.offerings.Delete(ctx, id), "Servicio", id), "deleted", "service", id)
}

// Galleries

func (s *ContentService) gallery(kind domain.MediaKind) (repository.MediaRepository, string, error) {
	repo, ok := s.galleries[kind]
	if !ok || repo == nil {
		return nil, "", apperrors.NewValidationError("galería desconocida", map[string]any{"kind": string(kind)})
	}
	if kind == domain.MediaVideo {
		return repo, "Video", nil
	}
	return repo, "Foto", nil
}

func (s *ContentService) ListMedia(ctx context.Context, kind domain.MediaKind) ([]domain.Media, error) {
	repo, _, err := s.gallery(kind)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func (s *ContentService) GetMedia(ctx context.Context, kind domain.MediaKind, id string) (*domain.Media, error) {
	repo, resource, err := s.gallery(kind)
	if err != nil {
		return nil, err
	}
	m, err := repo.GetByID(ctx, id)
	return m, notFound(err, resource, id)
}

// SaveMedia stores m in the gallery named by m.Kind. The URL must be absolute http or https.
func (s *ContentService) SaveMedia(ctx context.Context, m *domain.Media) error {
	repo, resource, err := s.gallery(m.Kind)
	if err != nil {
		return err
	}
	m.URL = strings.TrimSpace(m.URL)
	if m.URL == "" {
		return required("url")
	}
	if !isWebURL(m.URL) {
		return apperrors.NewValidationError("URL inválida", map[string]any{"field": "url"})
	}
	if m.ID == "" {
		err = repo.Create(ctx, m)
	} else {
		err = notFound(repo.Update(ctx, m), resource, m.ID)
	}
	return s.logged(err, "saved", string(m.Kind), m.ID)
}

func (s *ContentService) DeleteMedia(ctx context.Context, kind domain.MediaKind, id string) error {
	repo, resource, err := s.gallery(kind)
	if err != nil {
		return err
	}
	return s.logged(notFound(repo.Delete(ctx, id), resource, id), "deleted", string(kind), id)
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// About us

// GetAbout returns the about record, or nil when none was saved yet.
func (s *ContentService) GetAbout(ctx context.Context) (*domain.About, error) {
	a, err := s.about.First(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return a, err
}

func (s *ContentService) GetAboutByID(ctx context.Context, id string) (*domain.About, error) {
	a, err := s.about.GetByID(ctx, id)
	return a, notFound(err, "Información", id)
}

// SaveAbout creates the about record or overwrites the one that exists.
func (s *ContentService) SaveAbout(ctx context.Context, a *domain.About) error {
	a.Mission = strings.TrimSpace(a.Mission)
	a.Vision = strings.TrimSpace(a.Vision)
	return s.logged(s.about.Upsert(ctx, a), "saved", "about", a.ID)
}

func (s *ContentService) UpdateAbout(ctx context.Context, a *domain.About) error {
	a.Mission = strings.TrimSpace(a.Mission)
	a.Vision = strings.TrimSpace(a.Vision)
	return s.logged(notFound(s.about.Update(ctx, a), "Información", a.ID), "saved", "about", a.ID)
}

func (s *ContentService) DeleteAbout(ctx context.Context, id string) error {
	return s.logged(notFound(s.about.Delete(ctx, id), "Información", id), "deleted", "about", id)
}

// Contact

// GetContact returns the contact record, or nil when none was saved yet.
func (s *ContentService) GetContact(ctx context.Context) (*domain.ContactInfo, error) {
	c, err := s.contact.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

// SaveContact overwrites the contact record. An email, when given, must be well formed.
func (s *ContentService) SaveContact(ctx context.Context, c *domain.ContactInfo) error {
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = normalizeEmail(c.Email)
	c.Address = strings.TrimSpace(c.Address)
	c.Hours = strings.TrimSpace(c.Hours)
	c.Facebook = strings.TrimSpace(c.Facebook)
	c.WhatsApp = strings.TrimSpace(c.WhatsApp)
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return apperrors.NewValidationError("Formato de email inválido", map[string]any{"field": "email"})
	}
	return s.logged(s.contact.Upsert(ctx, c), "saved", "contact", c.ID)
}
