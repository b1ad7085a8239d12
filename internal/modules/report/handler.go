package report

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/view"
)

// Handler exposes report HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/low_stock", h.lowStock)
		r.Get("/view.csv", h.viewCSV)
		r.Post("/labels", h.labels)
	})
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.LowStock(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, entries)
}

func (h *Handler) viewCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st := view.State{
		Search:         q.Get("search"),
		CategoryFilter: q.Get("category"),
		LocationFilter: q.Get("location"),
		SortKey:        view.SortKey(q.Get("sort")),
		SortDir:        view.SortDirection(q.Get("dir")),
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory_view.csv"`)
	if err := h.service.ViewCSV(r.Context(), st, w); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (h *Handler) labels(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemIDs []string `json:"item_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	labels, err := h.service.Labels(r.Context(), req.ItemIDs)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, labels)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
