package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "domain error passes through", err: NewForbidden("Acceso denegado"), status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "wrapped domain error", err: fmt.Errorf("ctx: %w", NewConflict("dup", nil)), status: http.StatusConflict, code: "CONFLICT"},
		{name: "fiber error", err: fiber.NewError(http.StatusNotFound, "Cannot GET /x"), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "no rows", err: pgx.ErrNoRows, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "anything else", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			require.NotNil(t, de)
			assert.Equal(t, tt.status, de.HTTPStatus)
			assert.Equal(t, tt.code, de.Code)
		})
	}

	assert.Nil(t, ToDomainError(nil))
}

func TestNewUnauthorizedCarriesExpiredFlag(t *testing.T) {
	de := ToDomainError(NewUnauthorized("Token expirado", true))
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, true, de.Fields["isExpired"])

	de = ToDomainError(NewUnauthorized("No autorizado", false))
	assert.Equal(t, false, de.Fields["isExpired"])
}
