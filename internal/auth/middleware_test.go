package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/catalog-service/internal/domain"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

// newGuardApp mounts the guard the way the router does and renders errors like the
// global error middleware.
func newGuardApp(guard *Guard, chain ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			body := fiber.Map{"error": de.Message}
			for k, v := range de.Fields {
				body[k] = v
			}
			return c.Status(de.HTTPStatus).JSON(body)
		},
	})
	handlers := append([]fiber.Handler{guard.Authenticate}, chain...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return c.SendStatus(http.StatusTeapot)
		}
		return c.JSON(fiber.Map{"id": identity.SubjectID, "role": identity.Role})
	})
	app.Get("/protected", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, authorization string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestAuthenticate(t *testing.T) {
	authority, clock := newTestAuthority(t, "secret")
	other, _ := newTestAuthority(t, "other-secret")
	app := newGuardApp(NewGuard(authority))

	valid, _, err := authority.IssueDefault("user-1", domain.RoleUser)
	require.NoError(t, err)
	expired, _, err := authority.Issue("user-1", domain.RoleUser, "1s")
	require.NoError(t, err)
	foreign, _, err := other.IssueDefault("user-1", domain.RoleUser)
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Minute)

	t.Run("missing header", func(t *testing.T) {
		status, body := doRequest(t, app, "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "No autorizado", body["error"])
		assert.Equal(t, false, body["isExpired"])
	})

	t.Run("wrong scheme", func(t *testing.T) {
		status, body := doRequest(t, app, "Basic "+valid)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, false, body["isExpired"])
	})

	t.Run("bearer without token", func(t *testing.T) {
		status, body := doRequest(t, app, "Bearer ")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, false, body["isExpired"])
	})

	t.Run("expired token", func(t *testing.T) {
		status, body := doRequest(t, app, "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Token expirado", body["error"])
		assert.Equal(t, true, body["isExpired"])
	})

	t.Run("foreign signature", func(t *testing.T) {
		status, body := doRequest(t, app, "Bearer "+foreign)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Token inválido", body["error"])
		assert.Equal(t, false, body["isExpired"])
	})

	t.Run("valid token", func(t *testing.T) {
		status, body := doRequest(t, app, "Bearer "+valid)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "user-1", body["id"])
		assert.Equal(t, "user", body["role"])
	})
}

func TestAuthorize(t *testing.T) {
	authority, _ := newTestAuthority(t, "secret")
	guard := NewGuard(authority)

	userToken, _, err := authority.IssueDefault("user-1", domain.RoleUser)
	require.NoError(t, err)
	adminToken, _, err := authority.IssueDefault("admin-1", domain.RoleAdmin)
	require.NoError(t, err)

	adminOnly := newGuardApp(guard, guard.Authorize(domain.RoleAdmin))
	anyone := newGuardApp(guard, guard.Authorize(domain.RoleAdmin, domain.RoleUser))

	status, body := doRequest(t, adminOnly, "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body["error"], "Acceso denegado")

	status, _ = doRequest(t, adminOnly, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, anyone, "Bearer "+userToken)
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthorizeWithoutIdentityIsInternalError(t *testing.T) {
	guard := NewGuard(nil)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})
	app.Get("/", guard.Authorize(domain.RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCheckRole(t *testing.T) {
	user := &domain.Identity{SubjectID: "u", Role: domain.RoleUser}
	admin := &domain.Identity{SubjectID: "a", Role: domain.RoleAdmin}

	err := CheckRole(user, domain.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)

	assert.NoError(t, CheckRole(admin, domain.RoleAdmin))
	assert.NoError(t, CheckRole(user, domain.RoleAdmin, domain.RoleUser))
	assert.Error(t, CheckRole(admin))
}
