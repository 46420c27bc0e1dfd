package seller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qwikorder/qwikorder-backend/internal/modules/auth"
)

// Handler exposes the seller's own profile endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/v1/profile", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.getProfile)
		r.Put("/", h.updateProfile)
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	sl, err := h.service.GetByID(r.Context(), auth.SellerIDFrom(r.Context()))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	respond(w, http.StatusOK, sl)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sl, err := h.service.UpdateProfile(r.Context(), auth.SellerIDFrom(r.Context()), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, sl)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
