package dto

import (
	"time"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// CategoryPayload is the request and response shape of a category.
type CategoryPayload struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

func (p CategoryPayload) Domain(id string) *domain.Category {
	return &domain.Category{ID: id, Name: p.Name, Description: p.Description, ImageURL: p.ImageURL}
}

func NewCategoryPayload(c *domain.Category) CategoryPayload {
	return CategoryPayload{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// LocalityPayload is the request and response shape of a locality.
type LocalityPayload struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

func (p LocalityPayload) Domain(id string) *domain.Locality {
	return &domain.Locality{ID: id, Name: p.Name, Description: p.Description}
}

func NewLocalityPayload(l *domain.Locality) LocalityPayload {
	return LocalityPayload{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// SizePayload is the request and response shape of a size.
type SizePayload struct {
	ID         string    `json:"id,omitempty"`
	CategoryID string    `json:"categoryId"`
	Gender     string    `json:"gender"`
	Size       string    `json:"size"`
	AgeRange   string    `json:"ageRange"`
	Measure    string    `json:"measure"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

func (p SizePayload) Domain(id string) *domain.Size {
	return &domain.Size{
		ID:         id,
		CategoryID: p.CategoryID,
		Gender:     p.Gender,
		Label:      p.Size,
		AgeRange:   p.AgeRange,
		Measure:    p.Measure,
	}
}

func NewSizePayload(s *domain.Size) SizePayload {
	return SizePayload{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		Gender:     s.Gender,
		Size:       s.Label,
		AgeRange:   s.AgeRange,
		Measure:    s.Measure,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ProductPayload is the request and response shape of a product.
type ProductPayload struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LocalityID  string    `json:"localityId"`
	FabricType  string    `json:"fabricType"`
	ImageURL    string    `json:"imageUrl"`
	SizeIDs     []string  `json:"sizeIds"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

func (p ProductPayload) Domain(id string) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		LocalityID:  p.LocalityID,
		FabricType:  p.FabricType,
		ImageURL:    p.ImageURL,
		SizeIDs:     p.SizeIDs,
	}
}

func NewProductPayload(p *domain.Product) ProductPayload {
	sizeIDs := p.SizeIDs
	if sizeIDs == nil {
		sizeIDs = []string{}
	}
	return ProductPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		LocalityID:  p.LocalityID,
		FabricType:  p.FabricType,
		ImageURL:    p.ImageURL,
		SizeIDs:     sizeIDs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
