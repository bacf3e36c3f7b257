package domain

import "time"

// Offering is a service the business advertises on the site.
type Offering struct {
	ID          string
	Name        string
	Title       string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MediaKind separates the photo gallery from the video gallery.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
)

// Media is a gallery entry. Only the URL is stored; uploads happen elsewhere.
type Media struct {
	ID          string
	Kind        MediaKind
	URL         string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// About holds the mission and vision statements. There is at most one.
type About struct {
	ID        string
	Mission   string
	Vision    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactInfo is the single set of contact details shown on the site.
type ContactInfo struct {
	ID        string
	Phone     string
	Email     string
	Address   string
	Hours     string
	Facebook  string
	WhatsApp  string
	UpdatedAt time.Time
}
