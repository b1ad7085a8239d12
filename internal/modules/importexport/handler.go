package importexport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
)

// Handler exposes CSV import/export HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/csv", func(r chi.Router) {
		r.Get("/export", h.export)
		r.Post("/import", h.importCSV)
	})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	if err := h.service.Export(r.Context(), w); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "failed to read uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	report, err := h.service.Import(r.Context(), file)
	if errors.Is(err, item.ErrDuplicateID) {
		respond(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
