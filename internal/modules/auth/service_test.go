package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginPlaintextPassword(t *testing.T) {
	svc := NewService(Config{Password: "moonflower", JWTSecret: "jwt-secret"})

	token, err := svc.Login(context.Background(), "moonflower")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("moonflower"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService(Config{PasswordHash: string(hash), JWTSecret: "jwt-secret"})

	_, err = svc.Login(context.Background(), "moonflower")
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginNoPasswordConfigured(t *testing.T) {
	svc := NewService(Config{JWTSecret: "jwt-secret"})

	_, err := svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequireAdminRoundTrip(t *testing.T) {
	svc := NewService(Config{Password: "moonflower", JWTSecret: "jwt-secret"})

	protected := svc.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// No token
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Bad token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Freshly issued token
	token, err := svc.Login(context.Background(), "moonflower")
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireAdminRejectsTokenFromOtherSecret(t *testing.T) {
	issuer := NewService(Config{Password: "moonflower", JWTSecret: "other-secret"})
	verifier := NewService(Config{Password: "moonflower", JWTSecret: "jwt-secret"})

	token, err := issuer.Login(context.Background(), "moonflower")
	require.NoError(t, err)

	protected := verifier.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
