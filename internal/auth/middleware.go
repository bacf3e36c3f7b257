package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/domain"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

const identityKey = "auth_identity"

// Messages returned to clients by the guard.
const (
	msgUnauthorized = "No autorizado"
	msgTokenInvalid = "Token inválido"
	msgTokenExpired = "Token expirado"
	msgForbidden    = "Acceso denegado"
)

// TokenVerifier verifies bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// Guard authenticates bearer tokens and enforces role membership.
type Guard struct {
	tokens TokenVerifier
}

// NewGuard constructs the guard.
func NewGuard(tokens TokenVerifier) *Guard {
	return &Guard{tokens: tokens}
}

// Authenticate requires a valid "Authorization: Bearer <token>" header and stores the
// identity for downstream handlers.
func (g *Guard) Authenticate(c *fiber.Ctx) error {
	identity, err := g.authenticate(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

func (g *Guard) authenticate(header string) (*domain.Identity, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, apperrors.NewUnauthorized(msgUnauthorized, false)
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || scheme != "Bearer" || token == "" {
		return nil, apperrors.NewUnauthorized(msgTokenInvalid, false)
	}

	identity, err := g.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, apperrors.NewUnauthorized(msgTokenExpired, true)
		}
		return nil, apperrors.NewUnauthorized(msgTokenInvalid, false)
	}
	return identity, nil
}

// Authorize allows the request through only when the authenticated role is one of
// allowed. It must be chained after Authenticate.
func (g *Guard) Authorize(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewInternalError(errors.New("authorize reached without an authenticated identity"))
		}
		if err := checkRole(identity, allowedSet); err != nil {
			return err
		}
		return c.Next()
	}
}

// CheckRole fails with a Forbidden error unless identity holds one of allowed.
func CheckRole(identity *domain.Identity, allowed ...domain.Role) error {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}
	return checkRole(identity, allowedSet)
}

func checkRole(identity *domain.Identity, allowed map[domain.Role]struct{}) error {
	if _, ok := allowed[identity.Role]; ok {
		return nil
	}
	if _, adminOnly := allowed[domain.RoleAdmin]; adminOnly && len(allowed) == 1 {
		return apperrors.NewForbidden(msgForbidden + " - Se requiere rol de administrador")
	}
	return apperrors.NewForbidden(msgForbidden)
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok && identity != nil
}
