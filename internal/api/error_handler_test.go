package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/soaeast/crm-api/internal/core/domain"
)

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestResolveError_DomainMappings(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "Email already registered"},
		{"empty patch", domain.ErrNoFieldsToUpdate, http.StatusBadRequest, "No fields to update"},
		{"role in use", &domain.RoleInUseError{Count: 2}, http.StatusBadRequest, "Cannot delete role: 2 team member(s) assigned"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized, "Invalid token"},
		{"user gone", domain.ErrUserNotFound, http.StatusUnauthorized, "User not found"},
		{"client not found", domain.NotFound("Client"), http.StatusNotFound, "Client not found"},
		{"order not found", domain.NotFound("Order"), http.StatusNotFound, "Order not found"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := resolveError(tt.err, zerolog.Nop(), newTestContext())
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if msg != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestResolveError_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusBadRequest, "invalid amount"), zerolog.Nop(), newTestContext())
	if code != http.StatusBadRequest || msg != "invalid amount" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(domain.NotFound("Deal"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"error\":\"Deal not found\"}\n" {
		t.Fatalf("unexpected body %q", body)
	}
}
