package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/service"
)

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	users *service.UserService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(users *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get handles GET /api/perfil.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.users.Profile(c.UserContext(), identity.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Update handles PUT /api/perfil.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req dto.ProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.UserContext(), identity.SubjectID, service.ProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Perfil actualizado", "data": dto.NewUserResponse(user)})
}

// ChangePassword handles PUT /api/perfil/password.
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req dto.PasswordChangeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := h.users.ChangePassword(c.UserContext(), identity.SubjectID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Contraseña actualizada"})
}
