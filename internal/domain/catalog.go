package domain

import "time"

// Category groups sizes and products.
type Category struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Locality is the place a product line comes from.
type Locality struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Size describes one size of a category for a gender and age range.
type Size struct {
	ID         string
	CategoryID string
	Gender     string
	Label      string
	AgeRange   string
	Measure    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Product is a catalog item.
type Product struct {
	ID          string
	Name        string
	Description string
	LocalityID  string
	FabricType  string
	ImageURL    string
	SizeIDs     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
