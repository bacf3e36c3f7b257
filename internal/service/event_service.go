package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/repository"
	"github.com/spec-kit/catalog-service/internal/schedule"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

// EventInput carries event fields from the client. Nil means "not supplied"; an empty
// string clears an optional field.
type EventInput struct {
	Title       *string
	Description *string
	Location    *string
	Date        *string
	StartTime   *string
	EndTime     *string
}

// EventService manages events and keeps DeleteAt in sync with their schedule.
type EventService struct {
	events repository.EventRepository
	loc    *time.Location
	logger *zap.Logger
}

// NewEventService builds the service. loc is the zone client dates are read in.
func NewEventService(events repository.EventRepository, loc *time.Location, logger *zap.Logger) *EventService {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{events: events, loc: loc, logger: logger}
}

// Location returns the zone event dates are interpreted in.
func (s *EventService) Location() *time.Location {
	return s.loc
}

// List returns the events that are still visible.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.ListVisible(ctx)
}

// Get returns one event.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, eventNotFound(err, id)
	}
	return event, nil
}

// Create stores a new event, deriving DeleteAt from its date and end time.
func (s *EventService) Create(ctx context.Context, in EventInput) (*domain.Event, error) {
	event := &domain.Event{}
	if err := s.apply(event, in); err != nil {
		return nil, err
	}
	if err := s.refreshDeleteAt(event); err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	s.logScheduled(event)
	return event, nil
}

// Update merges in into the stored event. DeleteAt is recomputed from the resulting
// date and end time whenever either of them is part of the update.
func (s *EventService) Update(ctx context.Context, id string, in EventInput) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, eventNotFound(err, id)
	}

	if err := s.apply(event, in); err != nil {
		return nil, err
	}
	if in.Date != nil || in.EndTime != nil {
		if err := s.refreshDeleteAt(event); err != nil {
			return nil, err
		}
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, eventNotFound(err, id)
	}
	s.logScheduled(event)
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return eventNotFound(err, id)
	}
	return nil
}

// PurgeExpired deletes events whose DeleteAt has passed.
func (s *EventService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.events.PurgeExpired(ctx)
}

func (s *EventService) apply(event *domain.Event, in EventInput) error {
	if in.Title != nil {
		event.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Location != nil {
		event.Location = strings.TrimSpace(*in.Location)
	}
	if in.Date != nil {
		if strings.TrimSpace(*in.Date) == "" {
			event.Date = nil
		} else {
			date, err := schedule.ParseEventDate(*in.Date, s.loc)
			if err != nil {
				return scheduleError("date", err)
			}
			event.Date = &date
		}
	}

	var err error
	if in.StartTime != nil {
		if event.StartTime, err = clockField(*in.StartTime); err != nil {
			return scheduleError("startTime", err)
		}
	}
	if in.EndTime != nil {
		if event.EndTime, err = clockField(*in.EndTime); err != nil {
			return scheduleError("endTime", err)
		}
	}
	return nil
}

// refreshDeleteAt recomputes DeleteAt from the event's own date. Without a date there is
// nothing to expire from, so DeleteAt is cleared.
func (s *EventService) refreshDeleteAt(event *domain.Event) error {
	if event.Date == nil {
		event.DeleteAt = nil
		return nil
	}
	deleteAt, err := schedule.ComputeDeleteAt(event.Date.In(s.loc), event.EndTime)
	if err != nil {
		return scheduleError("endTime", err)
	}
	event.DeleteAt = &deleteAt
	return nil
}

func (s *EventService) logScheduled(event *domain.Event) {
	if event.DeleteAt == nil {
		return
	}
	s.logger.Info("event scheduled for deletion",
		zap.String("event_id", event.ID),
		zap.Time("delete_at", *event.DeleteAt),
	)
}

// clockField normalizes an optional "HH:MM" value; blank clears it.
func clockField(value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if _, _, err := schedule.ParseClock(value); err != nil {
		return nil, err
	}
	return &value, nil
}

func scheduleError(field string, err error) error {
	de := apperrors.NewDomainError("VALIDATION_FAILED", "Horario inválido", http.StatusBadRequest, map[string]any{
		"field":  field,
		"reason": err.Error(),
	})
	de.Err = err
	return de
}

func eventNotFound(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("Evento", map[string]any{"id": id})
	}
	return err
}
