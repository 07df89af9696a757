package checkout

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the checkout HTTP endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/checkout", h.createSession)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.service.CreateSession(r.Context(), req)
	if err != nil {
		var provErr *ProviderError
		switch {
		case errors.Is(err, ErrEmptyCart), strings.Contains(err.Error(), "invalid"):
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.As(err, &provErr):
			respond(w, http.StatusBadGateway, map[string]string{"error": "error creating checkout session"})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	respond(w, http.StatusOK, resp)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
