package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/service"
)

// EventsHandler exposes /api/eventos.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events *service.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// List handles GET /api/eventos.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.events.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, dto.NewEventResponse(&events[i], h.events.Location()))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /api/eventos/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Evento")
	if err != nil {
		return err
	}
	event, err := h.events.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponse(event, h.events.Location())})
}

// Create handles POST /api/eventos.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	event, err := h.events.Create(c.UserContext(), eventInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEventResponse(event, h.events.Location())})
}

// Update handles PUT /api/eventos/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Evento")
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	event, err := h.events.Update(c.UserContext(), id, eventInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponse(event, h.events.Location())})
}

// Delete handles DELETE /api/eventos/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Evento")
	if err != nil {
		return err
	}
	if err := h.events.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Evento eliminado"})
}

func eventInput(req dto.EventRequest) service.EventInput {
	return service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
}
