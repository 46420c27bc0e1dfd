package storefront

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/qwikorder/qwikorder-backend/internal/modules/seller"
)

// Handler exposes the public, slug-addressed storefront endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/store/{slug}", func(r chi.Router) {
		r.Get("/", h.getStorefront)
		r.Post("/orders", h.submitOrder)
	})
}

func (h *Handler) getStorefront(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Load(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.Submit(r.Context(), chi.URLParam(r, "slug"), req)
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, seller.ErrNotFound):
			code = http.StatusNotFound
		case strings.Contains(err.Error(), "not available"),
			strings.Contains(err.Error(), "insufficient stock"):
			code = http.StatusUnprocessableEntity
		case strings.Contains(err.Error(), "required"),
			strings.Contains(err.Error(), "empty"),
			strings.Contains(err.Error(), "invalid"),
			strings.Contains(err.Error(), "quantity"):
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
