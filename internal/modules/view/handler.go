package view

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the derived inventory view over HTTP.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Get("/view", h.view)
	})
}

// view derives the inventory view for the query parameters:
// ?search=&category=&location=&sort=&dir=&group=
func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st := State{
		Search:         q.Get("search"),
		CategoryFilter: q.Get("category"),
		LocationFilter: q.Get("location"),
		SortKey:        SortKey(q.Get("sort")),
		SortDir:        SortDirection(q.Get("dir")),
		GroupMode:      GroupMode(q.Get("group")),
	}
	switch st.SortKey {
	case "", SortByID, SortByDescription, SortByCategory, SortByQuantity:
	default:
		respond(w, http.StatusBadRequest, map[string]string{"error": "unknown sort key"})
		return
	}
	switch st.SortDir {
	case "", Ascending, Descending:
	default:
		respond(w, http.StatusBadRequest, map[string]string{"error": "unknown sort direction"})
		return
	}
	switch st.GroupMode {
	case "", GroupNone, GroupByCategory, GroupByLocation:
	default:
		respond(w, http.StatusBadRequest, map[string]string{"error": "unknown group mode"})
		return
	}

	model, err := h.service.View(r.Context(), st)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, model)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
