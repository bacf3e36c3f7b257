package dto

import (
	"time"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserIdentity `json:"user"`
}

// UserIdentity is the minimal user view attached to a login.
type UserIdentity struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

// ProfileRequest payload for PUT /api/perfil.
type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PasswordChangeRequest payload for PUT /api/perfil/password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// RoleRequest payload for PUT /api/admin/users/:userId/role.
type RoleRequest struct {
	Role string `json:"role"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Role          domain.Role `json:"role"`
	EmailVerified bool        `json:"emailVerified"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// DashboardResponse payload for GET /api/admin/dashboard.
type DashboardResponse struct {
	Message string         `json:"message"`
	Stats   DashboardStats `json:"stats"`
}

// DashboardStats counts the main collections.
type DashboardStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalEvents   int64 `json:"totalEvents"`
	TotalProducts int64 `json:"totalProducts"`
}
