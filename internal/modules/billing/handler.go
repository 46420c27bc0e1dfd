package billing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qwikorder/qwikorder-backend/internal/modules/auth"
)

// Handler exposes SMS billing endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/v1/billing", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/bundles", h.listBundles)
		r.Get("/balance", h.getBalance)
		r.Get("/topups", h.listTopUps)
		r.Post("/topup", h.topUp)
	})
}

func (h *Handler) listBundles(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Bundles())
}

func (h *Handler) getBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.Balance(r.Context(), auth.SellerIDFrom(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]int{"sms_balance": balance})
}

func (h *Handler) listTopUps(w http.ResponseWriter, r *http.Request) {
	topups, err := h.service.ListTopUps(r.Context(), auth.SellerIDFrom(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, topups)
}

func (h *Handler) topUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	topup, err := h.service.TopUp(r.Context(), auth.SellerIDFrom(r.Context()), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusCreated, topup)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
