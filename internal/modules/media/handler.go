package media

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps incoming files at 10 MB.
const maxUploadBytes = 10 << 20

// Handler exposes media upload endpoints.
type Handler struct {
	service      Service
	requireAdmin func(http.Handler) http.Handler
}

func NewHandler(service Service, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, requireAdmin: requireAdmin}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/media", func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/upload", h.upload)
		r.Delete("/*", h.remove)
	})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	// Generated images arrive as JSON-wrapped data URIs, admin uploads as
	// multipart files.
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		h.uploadDataURI(w, r)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "missing file field"})
		return
	}
	defer file.Close()

	asset, err := h.service.Upload(r.Context(), file, header.Filename)
	if err != nil {
		respond(w, http.StatusBadGateway, map[string]string{"error": "upload failed"})
		return
	}
	respond(w, http.StatusCreated, asset)
}

func (h *Handler) uploadDataURI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DataURI  string `json:"dataUri"`
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	raw, ok := decodeDataURI(req.DataURI)
	if !ok {
		respond(w, http.StatusBadRequest, map[string]string{"error": "dataUri must be a base64 data URI"})
		return
	}
	if req.Filename == "" {
		req.Filename = "image"
	}

	asset, err := h.service.Upload(r.Context(), bytes.NewReader(raw), req.Filename)
	if err != nil {
		respond(w, http.StatusBadGateway, map[string]string{"error": "upload failed"})
		return
	}
	respond(w, http.StatusCreated, asset)
}

func decodeDataURI(uri string) ([]byte, bool) {
	rest, found := strings.CutPrefix(uri, "data:")
	if !found {
		return nil, false
	}
	meta, data, found := strings.Cut(rest, ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "*")
	if publicID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "missing public id"})
		return
	}
	if err := h.service.Remove(r.Context(), publicID); err != nil {
		respond(w, http.StatusBadGateway, map[string]string{"error": "removal failed"})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "removed"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
