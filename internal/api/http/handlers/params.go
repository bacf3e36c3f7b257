package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/catalog-service/internal/auth"
	"github.com/spec-kit/catalog-service/internal/domain"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

// pathID returns the named path parameter when it is a well formed id. Anything else
// cannot match a stored row and is reported as not found.
func pathID(c *fiber.Ctx, name, resource string) (string, error) {
	raw := c.Params(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.NewNotFound(resource, map[string]any{"id": raw})
	}
	return id.String(), nil
}

// optionalQueryID reads an id filter from the query string; empty means no filter.
func optionalQueryID(c *fiber.Ctx, name string) (string, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.NewValidationError("identificador inválido", map[string]any{"field": name})
	}
	return id.String(), nil
}

func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}

func currentIdentity(c *fiber.Ctx) (*domain.Identity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("No autorizado", false)
	}
	return identity, nil
}
