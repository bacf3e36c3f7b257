package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/service"
)

// AdminHandler serves user administration for admins.
type AdminHandler struct {
	users *service.UserService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(users *service.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.users.Dashboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.DashboardResponse{
		Message: "Bienvenido al panel de administración",
		Stats: dto.DashboardStats{
			TotalUsers:    stats.TotalUsers,
			TotalEvents:   stats.TotalEvents,
			TotalProducts: stats.TotalProducts,
		},
	})
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ChangeRole handles PUT /api/admin/users/:userId/role.
func (h *AdminHandler) ChangeRole(c *fiber.Ctx) error {
	id, err := pathID(c, "userId", "Usuario")
	if err != nil {
		return err
	}
	var req dto.RoleRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.users.ChangeRole(c.UserContext(), id, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Rol actualizado", "data": dto.NewUserResponse(user)})
}

// DeleteUser handles DELETE /api/admin/users/:userId.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c, "userId", "Usuario")
	if err != nil {
		return err
	}
	if err := h.users.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Usuario eliminado"})
}
