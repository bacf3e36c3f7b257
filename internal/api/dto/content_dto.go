package dto

import (
	"time"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// OfferingPayload is the request and response shape of an advertised service.
type OfferingPayload struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

func (p OfferingPayload) Domain(id string) *domain.Offering {
	return &domain.Offering{ID: id, Name: p.Name, Title: p.Title, Description: p.Description, ImageURL: p.ImageURL}
}

func NewOfferingPayload(o *domain.Offering) OfferingPayload {
	return OfferingPayload{
		ID:          o.ID,
		Name:        o.Name,
		Title:       o.Title,
		Description: o.Description,
		ImageURL:    o.ImageURL,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// MediaPayload is the request and response shape of a photo or video.
type MediaPayload struct {
	ID          string    `json:"id,omitempty"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

func (p MediaPayload) Domain(kind domain.MediaKind, id string) *domain.Media {
	return &domain.Media{ID: id, Kind: kind, URL: p.URL, Title: p.Title, Description: p.Description}
}

func NewMediaPayload(m *domain.Media) MediaPayload {
	return MediaPayload{
		ID:          m.ID,
		URL:         m.URL,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// AboutPayload carries the mission and vision statements.
type AboutPayload struct {
	ID        string    `json:"id,omitempty"`
	Mission   string    `json:"mission"`
	Vision    string    `json:"vision"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (p AboutPayload) Domain(id string) *domain.About {
	return &domain.About{ID: id, Mission: p.Mission, Vision: p.Vision}
}

func NewAboutPayload(a *domain.About) AboutPayload {
	return AboutPayload{
		ID:        a.ID,
		Mission:   a.Mission,
		Vision:    a.Vision,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ContactPayload carries the contact details.
type ContactPayload struct {
	ID        string    `json:"id,omitempty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Hours     string    `json:"hours"`
	Facebook  string    `json:"facebook"`
	WhatsApp  string    `json:"whatsapp"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (p ContactPayload) Domain() *domain.ContactInfo {
	return &domain.ContactInfo{
		Phone:    p.Phone,
		Email:    p.Email,
		Address:  p.Address,
		Hours:    p.Hours,
		Facebook: p.Facebook,
		WhatsApp: p.WhatsApp,
	}
}

func NewContactPayload(c *domain.ContactInfo) ContactPayload {
	return ContactPayload{
		ID:        c.ID,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Hours:     c.Hours,
		Facebook:  c.Facebook,
		WhatsApp:  c.WhatsApp,
		UpdatedAt: c.UpdatedAt,
	}
}
