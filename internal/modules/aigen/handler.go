package aigen

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the generation HTTP endpoints.
type Handler struct {
	service      Service
	requireAdmin func(http.Handler) http.Handler
}

func NewHandler(service Service, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, requireAdmin: requireAdmin}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/recommendations", h.recommend)

	// Content generation is an admin tool
	r.Route("/api/v1/generate", func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/description", h.generateDescription)
		r.Post("/images", h.generateImages)
	})
}

func (h *Handler) generateDescription(w http.ResponseWriter, r *http.Request) {
	var req DescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	resp, err := h.service.GenerateDescription(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, resp)
}

func (h *Handler) generateImages(w http.ResponseWriter, r *http.Request) {
	var req ImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	resp, err := h.service.GenerateImages(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, resp)
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	resp, err := h.service.Recommend(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, resp)
}

func statusFor(err error) int {
	if errors.Is(err, ErrGeneration) {
		return http.StatusBadGateway
	}
	if strings.Contains(err.Error(), "invalid") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
