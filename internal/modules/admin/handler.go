package admin

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qwikorder/qwikorder-backend/internal/modules/seller"
)

// RequireKey guards the admin surface with a static key sent in the
// X-Admin-Key header. A seller JWT is not enough here: these endpoints
// read across every tenant. An empty configured key locks the surface.
func RequireKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Key")
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				http.Error(w, "admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Handler exposes the platform admin endpoints: read-only views across
// every seller.
type Handler struct {
	repo    Repository
	sellers seller.Repository
}

func NewHandler(repo Repository, sellers seller.Repository) *Handler {
	return &Handler{repo: repo, sellers: sellers}
}

func (h *Handler) RegisterRoutes(r *chi.Mux, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/stats", h.getStats)
		r.Get("/vendors", h.listVendors)
		r.Get("/orders", h.listOrders)
	})
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, stats)
}

func (h *Handler) listVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.sellers.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, vendors)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, orders)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
