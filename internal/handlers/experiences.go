package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"
)

// ExperienceHandler serves the experience catalog
type ExperienceHandler struct {
	catalog services.CatalogStore
}

// NewExperienceHandler creates a new experience handler
func NewExperienceHandler(catalog services.CatalogStore) *ExperienceHandler {
	return &ExperienceHandler{catalog: catalog}
}

// List returns all experiences, optionally filtered by type
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	typeFilter := r.URL.Query().Get("type")
	writeJSON(w, http.StatusOK, h.catalog.List(typeFilter))
}

// Get returns one experience by id
func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	exp, err := h.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrExperienceNotFound) {
			writeError(w, http.StatusNotFound, "Experience not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}
	writeJSON(w, http.StatusOK, exp)
}
