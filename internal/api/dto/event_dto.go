package dto

import (
	"time"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/schedule"
)

// EventRequest is used for both create and update. Absent fields are nil; deleteAt is
// never read from clients.
type EventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
}

// EventResponse renders an event; date is the calendar day in the service zone.
type EventResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *string    `json:"date"`
	Location    string     `json:"location"`
	StartTime   *string    `json:"startTime"`
	EndTime     *string    `json:"endTime"`
	DeleteAt    *time.Time `json:"deleteAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewEventResponse maps a domain event.
func NewEventResponse(e *domain.Event, loc *time.Location) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		DeleteAt:    e.DeleteAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Date != nil {
		date := schedule.FormatDate(*e.Date, loc)
		resp.Date = &date
	}
	return resp
}
