package order

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(next http.Handler) http.Handler { return next }

func webhookRouter(t *testing.T) (*chi.Mux, Repository) {
	t.Helper()
	repo := NewMemoryRepository()
	r := chi.NewRouter()
	NewHandler(NewService(repo, testSecret), passthrough).RegisterRoutes(r)
	return r, repo
}

func TestWebhookEndpointAcknowledgesValidEvent(t *testing.T) {
	r, repo := webhookRouter(t)

	payload := completedEvent("cs_http_1")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", SignPayload(payload, testSecret, time.Now()))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())

	_, err := repo.GetBySessionID(req.Context(), "cs_http_1")
	require.NoError(t, err)
}

func TestWebhookEndpointRejectsUnsignedPayload(t *testing.T) {
	r, repo := webhookRouter(t)

	payload := completedEvent("cs_http_2")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/stripe", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	_, err := repo.GetBySessionID(req.Context(), "cs_http_2")
	assert.ErrorIs(t, err, ErrNotFound)
}
