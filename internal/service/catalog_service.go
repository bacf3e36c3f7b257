package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/repository"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

// CatalogService manages categories, localities, sizes and products.
type CatalogService struct {
	categories repository.CategoryRepository
	localities repository.LocalityRepository
	sizes      repository.SizeRepository
	products   repository.ProductRepository
	logger     *zap.Logger
}

// CatalogDependencies bundles the catalog repositories.
type CatalogDependencies struct {
	Categories repository.CategoryRepository
	Localities repository.LocalityRepository
	Sizes      repository.SizeRepository
	Products   repository.ProductRepository
	Logger     *zap.Logger
}

// NewCatalogService builds the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		categories: deps.Categories,
		localities: deps.Localities,
		sizes:      deps.Sizes,
		products:   deps.Products,
		logger:     logger,
	}
}

// logged records a successful catalog write and passes err through.
func (s *CatalogService) logged(err error, action, resource, id string) error {
	if err == nil {
		s.logger.Info("catalog "+action, zap.String("resource", resource), zap.String("id", id))
	}
	return err
}

// Categories

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	return c, notFound(err, "Categoría", id)
}

func (s *CatalogService) SaveCategory(ctx context.Context, c *domain.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return required("name")
	}
	var err error
	if c.ID == "" {
		err = s.categories.Create(ctx, c)
	} else {
		err = notFound(s.categories.Update(ctx, c), "Categoría", c.ID)
	}
	return s.logged(err, "saved", "category", c.ID)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.logged(notFound(s.categories.Delete(ctx, id), "Categoría", id), "deleted", "category", id)
}

// Localities

func (s *CatalogService) ListLocalities(ctx context.Context) ([]domain.Locality, error) {
	return s.localities.List(ctx)
}

func (s *CatalogService) GetLocality(ctx context.Context, id string) (*domain.Locality, error) {
	l, err := s.localities.GetByID(ctx, id)
	return l, notFound(err, "Localidad", id)
}

func (s *CatalogService) SaveLocality(ctx context.Context, l *domain.Locality) error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return required("name")
	}
	var err error
	if l.ID == "" {
		err = s.localities.Create(ctx, l)
	} else {
		err = s.localities.Update(ctx, l)
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return apperrors.NewConflict("Ya existe una localidad con ese nombre", map[string]any{"name": l.Name})
	}
	return s.logged(notFound(err, "Localidad", l.ID), "saved", "locality", l.ID)
}

// DeleteLocality fails with a conflict while products still reference the locality.
func (s *CatalogService) DeleteLocality(ctx context.Context, id string) error {
	err := s.localities.Delete(ctx, id)
	if errors.Is(err, repository.ErrMissingReference) {
		return apperrors.NewConflict("La localidad tiene productos asociados", map[string]any{"id": id})
	}
	return s.logged(notFound(err, "Localidad", id), "deleted", "locality", id)
}

// Sizes

func (s *CatalogService) ListSizes(ctx context.Context, categoryID string) ([]domain.Size, error) {
	return s.sizes.List(ctx, categoryID)
}

func (s *CatalogService) GetSize(ctx context.Context, id string) (*domain.Size, error) {
	size, err := s.sizes.GetByID(ctx, id)
	return size, notFound(err, "Talla", id)
}

func (s *CatalogService) SaveSize(ctx context.Context, size *domain.Size) error {
	size.CategoryID = strings.TrimSpace(size.CategoryID)
	if size.CategoryID == "" {
		return required("categoryId")
	}
	if _, err := s.categories.GetByID(ctx, size.CategoryID); err != nil {
		return missingReference(err, "categoryId", size.CategoryID)
	}
	var err error
	if size.ID == "" {
		err = s.sizes.Create(ctx, size)
	} else {
		err = s.sizes.Update(ctx, size)
	}
	if errors.Is(err, repository.ErrMissingReference) {
		return missingReference(repository.ErrNotFound, "categoryId", size.CategoryID)
	}
	return s.logged(notFound(err, "Talla", size.ID), "saved", "size", size.ID)
}

func (s *CatalogService) DeleteSize(ctx context.Context, id string) error {
	return s.logged(notFound(s.sizes.Delete(ctx, id), "Talla", id), "deleted", "size", id)
}

// Products

func (s *CatalogService) ListProducts(ctx context.Context, localityID string) ([]domain.Product, error) {
	return s.products.List(ctx, localityID)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	return p, notFound(err, "Producto", id)
}

func (s *CatalogService) SaveProduct(ctx context.Context, p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.LocalityID = strings.TrimSpace(p.LocalityID)
	if p.Name == "" {
		return required("name")
	}
	if p.LocalityID == "" {
		return required("localityId")
	}
	if _, err := s.localities.GetByID(ctx, p.LocalityID); err != nil {
		return missingReference(err, "localityId", p.LocalityID)
	}
	p.SizeIDs = dedupe(p.SizeIDs)
	for _, sizeID := range p.SizeIDs {
		if _, err := s.sizes.GetByID(ctx, sizeID); err != nil {
			return missingReference(err, "sizeIds", sizeID)
		}
	}

	var err error
	if p.ID == "" {
		err = s.products.Create(ctx, p)
	} else {
		err = s.products.Update(ctx, p)
	}
	if errors.Is(err, repository.ErrMissingReference) {
		return missingReference(repository.ErrNotFound, "localityId", p.LocalityID)
	}
	return s.logged(notFound(err, "Producto", p.ID), "saved", "product", p.ID)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.logged(notFound(s.products.Delete(ctx, id), "Producto", id), "deleted", "product", id)
}

func required(field string) error {
	return apperrors.NewValidationError(field+" es requerido", map[string]any{"field": field})
}

func notFound(err error, resource, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return err
}

func missingReference(err error, field, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewValidationError("referencia inexistente", map[string]any{"field": field, "id": id})
	}
	return err
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
