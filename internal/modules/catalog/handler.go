package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct {
	service      Service
	requireAdmin func(http.Handler) http.Handler
}

func NewHandler(service Service, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, requireAdmin: requireAdmin}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/ingredients", h.listIngredients)
		r.Get("/ingredients/{slug}", h.getIngredient)
		r.Get("/stories", h.listStories)
		r.Post("/stories", h.addStory)

		// Admin-gated mutations
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/products", h.createProduct)
			r.Put("/products/{id}", h.updateProduct)
			r.Delete("/products/{id}", h.removeProduct)
			r.Delete("/stories/{id}", h.removeStory)
		})
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	criteria := FilterCriteria{
		SearchTerm: r.URL.Query().Get("q"),
		Ingredient: r.URL.Query().Get("ingredient"),
		Category:   r.URL.Query().Get("category"),
	}
	if raw := r.URL.Query().Get("ailments"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			criteria.Ailments = append(criteria.Ailments, AilmentType(strings.TrimSpace(a)))
		}
	}
	products, err := h.service.ListProducts(r.Context(), criteria)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) listIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.ListIngredients(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, ingredients)
}

func (h *Handler) getIngredient(w http.ResponseWriter, r *http.Request) {
	ing, err := h.service.GetIngredientBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "ingredient not found"})
		return
	}
	respond(w, http.StatusOK, ing)
}

func (h *Handler) listStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.service.ListStories(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, stories)
}

func (h *Handler) addStory(w http.ResponseWriter, r *http.Request) {
	var req AddStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	story, err := h.service.AddStory(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, story)
}

func (h *Handler) removeStory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveStory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "removed"})
}

func statusFor(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
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
