package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/auth"
	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/observability"
	"github.com/spec-kit/catalog-service/internal/repository"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// TokenIssuer signs tokens for authenticated users.
type TokenIssuer interface {
	IssueDefault(subjectID string, role domain.Role) (string, time.Time, error)
}

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokens     TokenIssuer
	throttle   *auth.LoginThrottle
	metrics    *observability.Metrics
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies encapsulates collaborators of the auth service.
type AuthDependencies struct {
	Users      repository.UserRepository
	Tokens     TokenIssuer
	Throttle   *auth.LoginThrottle
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	BcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.Users,
		tokens:     deps.Tokens,
		throttle:   deps.Throttle,
		metrics:    deps.Metrics,
		logger:     logger,
		bcryptCost: deps.BcryptCost,
	}
}

// Register creates a new account with role user.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	user := &domain.User{
		Name:  strings.TrimSpace(in.Name),
		Email: normalizeEmail(in.Email),
		Phone: strings.TrimSpace(in.Phone),
		Role:  domain.RoleUser,
	}
	if err := validateContact(user.Name, user.Email, user.Phone); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) {
			return nil, apperrors.NewValidationError(err.Error(), map[string]any{"field": "password"})
		}
		return nil, apperrors.NewInternalError(err)
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("El usuario ya existe", map[string]any{"email": user.Email})
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login checks credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email y contraseña son requeridos", nil)
	}
	if s.throttle.Blocked(ctx, email) {
		return nil, apperrors.NewTooManyRequests("Demasiados intentos, intenta más tarde")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if user == nil || !auth.PasswordMatches(user.PasswordHash, password) {
		s.throttle.RecordFailure(ctx, email)
		s.metrics.RecordLoginFailure()
		return nil, apperrors.NewUnauthorized("Credenciales inválidas", false)
	}
	s.throttle.Reset(ctx, email)

	token, expiresAt, err := s.tokens.IssueDefault(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateContact(name, email, phone string) error {
	missing := []string{}
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("Todos los campos son requeridos", map[string]any{"missing": missing})
	}
	if !emailPattern.MatchString(email) {
		return apperrors.NewValidationError("Formato de email inválido", map[string]any{"field": "email"})
	}
	return nil
}
