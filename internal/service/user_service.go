package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/auth"
	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/repository"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

// ProfileInput is the editable part of a profile.
type ProfileInput struct {
	Name  string
	Email string
	Phone string
}

// DashboardStats summarizes the site for administrators.
type DashboardStats struct {
	TotalUsers    int64
	TotalEvents   int64
	TotalProducts int64
}

// UserService serves profile and user administration use cases.
type UserService struct {
	users      repository.UserRepository
	events     repository.EventRepository
	products   repository.ProductRepository
	logger     *zap.Logger
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, events repository.EventRepository, products repository.ProductRepository, logger *zap.Logger, bcryptCost int) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, events: events, products: products, logger: logger, bcryptCost: bcryptCost}
}

// Profile returns the account of the caller.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.getUser(ctx, userID)
}

// UpdateProfile replaces name, email and phone of userID.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)
	if err := validateContact(name, email, phone); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if email != user.Email {
		other, err := s.users.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, apperrors.NewConflict("El email ya está en uso por otro usuario", nil)
		}
	}

	user.Name, user.Email, user.Phone = name, email, phone
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("El email ya está en uso por otro usuario", nil)
		}
		return nil, s.notFound(err, userID)
	}
	return user, nil
}

// ChangePassword verifies current before storing the hash of next.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" || next == "" {
		return apperrors.NewValidationError("La contraseña actual y la nueva contraseña son requeridas", nil)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.PasswordMatches(user.PasswordHash, current) {
		return apperrors.NewValidationError("La contraseña actual es incorrecta", map[string]any{"field": "currentPassword"})
	}

	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) {
			return apperrors.NewValidationError(err.Error(), map[string]any{"field": "newPassword"})
		}
		return apperrors.NewInternalError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return s.notFound(err, userID)
	}
	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

// ListUsers returns every account.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ChangeRole sets the role of userID.
func (s *UserService) ChangeRole(ctx context.Context, userID, role string) (*domain.User, error) {
	parsed, ok := domain.ParseRole(role)
	if !ok {
		return nil, apperrors.NewValidationError("Rol inválido", map[string]any{"role": role})
	}
	user, err := s.users.UpdateRole(ctx, userID, parsed)
	if err != nil {
		return nil, s.notFound(err, userID)
	}
	s.logger.Info("user role changed", zap.String("user_id", userID), zap.String("role", string(parsed)))
	return user, nil
}

// DeleteUser removes userID.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return s.notFound(err, userID)
	}
	return nil
}

// Dashboard counts the main collections.
func (s *UserService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEvents, err = s.events.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.products.Count(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *UserService) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, s.notFound(err, userID)
	}
	return user, nil
}

func (s *UserService) notFound(err error, userID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("Usuario", map[string]any{"id": userID})
	}
	return err
}
