package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestMiddleware_TokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-roundtrip")

	userID := uuid.New()
	token, err := generateToken(userID)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(func(c echo.Context) error {
		got, err := GetUserIDFromContext(c)
		if err != nil {
			t.Fatalf("user ID missing from context: %v", err)
		}
		if got != userID {
			t.Fatalf("expected %s, got %s", userID, got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("expected valid token to pass, got %v", err)
	}
}

func TestMiddleware_RejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-roundtrip")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Middleware(func(c echo.Context) error {
				t.Fatal("handler must not run without valid credentials")
				return nil
			})

			err := handler(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestGetUserIDFromContext_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, err := GetUserIDFromContext(c); err == nil {
		t.Fatal("expected error when no user ID was set")
	}
}
