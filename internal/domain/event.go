package domain

import "time"

// Event is a dated happening published on the site. It is purged once DeleteAt passes.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        *time.Time
	Location    string
	StartTime   *string
	EndTime     *string
	DeleteAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
