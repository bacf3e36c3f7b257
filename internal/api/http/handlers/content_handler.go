package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/service"
)

// ContentHandler exposes services, about us and contact details.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs handler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// ListOfferings GET /api/servicios.
func (h *ContentHandler) ListOfferings(c *fiber.Ctx) error {
	items, err := h.content.ListOfferings(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.OfferingPayload, 0, len(items))
	for i := range items {
		out = append(out, dto.NewOfferingPayload(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetOffering GET /api/servicios/:id.
func (h *ContentHandler) GetOffering(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Servicio")
	if err != nil {
		return err
	}
	item, err := h.content.GetOffering(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOfferingPayload(item)})
}

// CreateOffering POST /api/servicios.
func (h *ContentHandler) CreateOffering(c *fiber.Ctx) error {
	return h.saveOffering(c, "")
}

// UpdateOffering PUT /api/servicios/:id.
func (h *ContentHandler) UpdateOffering(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Servicio")
	if err != nil {
		return err
	}
	return h.saveOffering(c, id)
}

func (h *ContentHandler) saveOffering(c *fiber.Ctx, id string) error {
	var req dto.OfferingPayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item := req.Domain(id)
	if err := h.content.SaveOffering(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(savedStatus(id)).JSON(fiber.Map{"data": dto.NewOfferingPayload(item)})
}

// DeleteOffering DELETE /api/servicios/:id.
func (h *ContentHandler) DeleteOffering(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Servicio")
	if err != nil {
		return err
	}
	if err := h.content.DeleteOffering(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Servicio eliminado"})
}

// GetAbout GET /api/nosotros. An empty object stands in until the record exists.
func (h *ContentHandler) GetAbout(c *fiber.Ctx) error {
	about, err := h.content.GetAbout(c.UserContext())
	if err != nil {
		return err
	}
	if about == nil {
		return c.JSON(fiber.Map{"data": fiber.Map{}})
	}
	return c.JSON(fiber.Map{"data": dto.NewAboutPayload(about)})
}

// GetAboutByID GET /api/nosotros/:id.
func (h *ContentHandler) GetAboutByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Información")
	if err != nil {
		return err
	}
	about, err := h.content.GetAboutByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAboutPayload(about)})
}

// SaveAbout POST /api/nosotros and PUT /api/admin/nosotros create or overwrite the record.
func (h *ContentHandler) SaveAbout(c *fiber.Ctx) error {
	var req dto.AboutPayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	about := req.Domain("")
	if err := h.content.SaveAbout(c.UserContext(), about); err != nil {
		return err
	}
	status := http.StatusOK
	if c.Method() == fiber.MethodPost {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": dto.NewAboutPayload(about)})
}

// UpdateAbout PUT /api/nosotros/:id.
func (h *ContentHandler) UpdateAbout(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Información")
	if err != nil {
		return err
	}
	var req dto.AboutPayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	about := req.Domain(id)
	if err := h.content.UpdateAbout(c.UserContext(), about); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAboutPayload(about)})
}

// DeleteAbout DELETE /api/nosotros/:id.
func (h *ContentHandler) DeleteAbout(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Información")
	if err != nil {
		return err
	}
	if err := h.content.DeleteAbout(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Información eliminada correctamente"})
}

// GetContact GET /api/contacto.
func (h *ContentHandler) GetContact(c *fiber.Ctx) error {
	contact, err := h.content.GetContact(c.UserContext())
	if err != nil {
		return err
	}
	if contact == nil {
		return c.JSON(fiber.Map{"data": fiber.Map{}})
	}
	return c.JSON(fiber.Map{"data": dto.NewContactPayload(contact)})
}

// SaveContact PUT /api/admin/contacto.
func (h *ContentHandler) SaveContact(c *fiber.Ctx) error {
	var req dto.ContactPayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	contact := req.Domain()
	if err := h.content.SaveContact(c.UserContext(), contact); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewContactPayload(contact)})
}

// MediaHandler exposes one gallery: photos under /api/fotos or videos under /api/videos.
type MediaHandler struct {
	content  *service.ContentService
	kind     domain.MediaKind
	resource string
}

// NewMediaHandler constructs handler for the gallery of kind.
func NewMediaHandler(content *service.ContentService, kind domain.MediaKind) *MediaHandler {
	resource := "Foto"
	if kind == domain.MediaVideo {
		resource = "Video"
	}
	return &MediaHandler{content: content, kind: kind, resource: resource}
}

func (h *MediaHandler) List(c *fiber.Ctx) error {
	items, err := h.content.ListMedia(c.UserContext(), h.kind)
	if err != nil {
		return err
	}
	out := make([]dto.MediaPayload, 0, len(items))
	for i := range items {
		out = append(out, dto.NewMediaPayload(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

func (h *MediaHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id", h.resource)
	if err != nil {
		return err
	}
	item, err := h.content.GetMedia(c.UserContext(), h.kind, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMediaPayload(item)})
}

func (h *MediaHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "")
}

func (h *MediaHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id", h.resource)
	if err != nil {
		return err
	}
	return h.save(c, id)
}

func (h *MediaHandler) save(c *fiber.Ctx, id string) error {
	var req dto.MediaPayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item := req.Domain(h.kind, id)
	if err := h.content.SaveMedia(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(savedStatus(id)).JSON(fiber.Map{"data": dto.NewMediaPayload(item)})
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id", h.resource)
	if err != nil {
		return err
	}
	if err := h.content.DeleteMedia(c.UserContext(), h.kind, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": h.resource + " eliminado"})
}
