package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ht5play/internal/auth"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	identity *auth.Identity
}

func (p *stubProvider) Login(_ context.Context, _, _ string) (string, error) {
	return "", auth.ErrInvalidCredentials
}

func (p *stubProvider) Validate(_ context.Context, token string) (*auth.Identity, error) {
	if token != "good-token" {
		return nil, auth.ErrInvalidToken
	}
	return p.identity, nil
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			t.Error("identity missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestValidateToken(t *testing.T) {
	m := NewAuthMiddleware(&stubProvider{identity: &auth.Identity{Email: "admin@ht5play.com", Admin: true}})
	handler := m.ValidateToken(protectedHandler(t))

	t.Run("valid bearer token passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/games", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/games", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/games", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad token rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/games", nil)
		req.Header.Set("Authorization", "Bearer forged")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		m := NewAuthMiddleware(&stubProvider{identity: &auth.Identity{Email: "admin@ht5play.com", Admin: true}})
		handler := m.ValidateToken(m.RequireAdmin(ok))

		req := httptest.NewRequest("GET", "/api/admin/games", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-admin identity gets 403", func(t *testing.T) {
		m := NewAuthMiddleware(&stubProvider{identity: &auth.Identity{Email: "viewer@ht5play.com"}})
		handler := m.ValidateToken(m.RequireAdmin(ok))

		req := httptest.NewRequest("GET", "/api/admin/games", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no identity at all gets 403", func(t *testing.T) {
		m := NewAuthMiddleware(&stubProvider{})
		w := httptest.NewRecorder()

		m.RequireAdmin(ok).ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/games", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
