package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/service"
)

// CatalogHandler exposes categories, localities, sizes and products.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories GET /api/categorias.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	items, err := h.catalog.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.CategoryPayload, 0, len(items))
	for i := range items {
		out = append(out, dto.NewCategoryPayload(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetCategory GET /api/categorias/:id.
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Categoría")
	if err != nil {
		return err
	}
	item, err := h.catalog.GetCategory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCategoryPayload(item)})
}

// CreateCategory POST /api/categorias.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	return h.saveCategory(c, "")
}

// UpdateCategory PUT /api/categorias/:id.
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Categoría")
	if err != nil {
		return err
	}
	return h.saveCategory(c, id)
}

func (h *CatalogHandler) saveCategory(c *fiber.Ctx, id string) error {
	var req dto.CategoryPayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item := req.Domain(id)
	if err := h.catalog.SaveCategory(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(savedStatus(id)).JSON(fiber.Map{"data": dto.NewCategoryPayload(item)})
}

// DeleteCategory DELETE /api/categorias/:id.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Categoría")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Categoría eliminada"})
}

// ListLocalities GET /api/localidades.
func (h *CatalogHandler) ListLocalities(c *fiber.Ctx) error {
	items, err := h.catalog.ListLocalities(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.LocalityPayload, 0, len(items))
	for i := range items {
		out = append(out, dto.NewLocalityPayload(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetLocality GET /api/localidades/:id.
func (h *CatalogHandler) GetLocality(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Localidad")
	if err != nil {
		return err
	}
	item, err := h.catalog.GetLocality(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewLocalityPayload(item)})
}

// CreateLocality POST /api/localidades.
func (h *CatalogHandler) CreateLocality(c *fiber.Ctx) error {
	return h.saveLocality(c, "")
}

// UpdateLocality PUT /api/localidades/:id.
func (h *CatalogHandler) UpdateLocality(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Localidad")
	if err != nil {
		return err
	}
	return h.saveLocality(c, id)
}

func (h *CatalogHandler) saveLocality(c *fiber.Ctx, id string) error {
	var req dto.LocalityPayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item := req.Domain(id)
	if err := h.catalog.SaveLocality(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(savedStatus(id)).JSON(fiber.Map{"data": dto.NewLocalityPayload(item)})
}

// DeleteLocality DELETE /api/localidades/:id.
func (h *CatalogHandler) DeleteLocality(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Localidad")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteLocality(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Localidad eliminada"})
}

// ListSizes GET /api/tallas?categoryId=.
func (h *CatalogHandler) ListSizes(c *fiber.Ctx) error {
	categoryID, err := optionalQueryID(c, "categoryId")
	if err != nil {
		return err
	}
	items, err := h.catalog.ListSizes(c.UserContext(), categoryID)
	if err != nil {
		return err
	}
	out := make([]dto.SizePayload, 0, len(items))
	for i := range items {
		out = append(out, dto.NewSizePayload(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetSize GET /api/tallas/:id.
func (h *CatalogHandler) GetSize(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Talla")
	if err != nil {
		return err
	}
	item, err := h.catalog.GetSize(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSizePayload(item)})
}

// CreateSize POST /api/tallas.
func (h *CatalogHandler) CreateSize(c *fiber.Ctx) error {
	return h.saveSize(c, "")
}

// UpdateSize PUT /api/tallas/:id.
func (h *CatalogHandler) UpdateSize(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Talla")
	if err != nil {
		return err
	}
	return h.saveSize(c, id)
}

func (h *CatalogHandler) saveSize(c *fiber.Ctx, id string) error {
	var req dto.SizePayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item := req.Domain(id)
	if err := h.catalog.SaveSize(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(savedStatus(id)).JSON(fiber.Map{"data": dto.NewSizePayload(item)})
}

// DeleteSize DELETE /api/tallas/:id.
func (h *CatalogHandler) DeleteSize(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Talla")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteSize(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Talla eliminada"})
}

// ListProducts GET /api/productos?localityId=.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	localityID, err := optionalQueryID(c, "localityId")
	if err != nil {
		return err
	}
	items, err := h.catalog.ListProducts(c.UserContext(), localityID)
	if err != nil {
		return err
	}
	out := make([]dto.ProductPayload, 0, len(items))
	for i := range items {
		out = append(out, dto.NewProductPayload(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetProduct GET /api/productos/:id.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Producto")
	if err != nil {
		return err
	}
	item, err := h.catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProductPayload(item)})
}

// CreateProduct POST /api/productos.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	return h.saveProduct(c, "")
}

// UpdateProduct PUT /api/productos/:id.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Producto")
	if err != nil {
		return err
	}
	return h.saveProduct(c, id)
}

func (h *CatalogHandler) saveProduct(c *fiber.Ctx, id string) error {
	var req dto.ProductPayload
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item := req.Domain(id)
	if err := h.catalog.SaveProduct(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(savedStatus(id)).JSON(fiber.Map{"data": dto.NewProductPayload(item)})
}

// DeleteProduct DELETE /api/productos/:id.
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "Producto")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Producto eliminado"})
}

func savedStatus(id string) int {
	if id == "" {
		return http.StatusCreated
	}
	return http.StatusOK
}
