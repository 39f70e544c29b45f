package repositories

import (
	"github.com/google/uuid"

	"tour-booking-platform/internal/models"
)

// CatalogRepository holds the experience catalog. It is seeded once at
// construction and read-only afterwards, so lookups need no locking.
type CatalogRepository struct {
	experiences map[string]*models.Experience
	order       []string
}

// NewCatalogRepository creates a catalog seeded with the production experiences
func NewCatalogRepository() *CatalogRepository {
	r := &CatalogRepository{
		experiences: make(map[string]*models.Experience),
	}
	for _, exp := range seedExperiences() {
		r.add(exp)
	}
	return r
}

func (r *CatalogRepository) add(exp *models.Experience) {
	if exp.ID == "" {
		exp.ID = uuid.New().String()
	}
	r.experiences[exp.ID] = exp
	r.order = append(r.order, exp.ID)
}

// List returns all experiences in insertion order, optionally filtered by
// exact type match. An unknown type yields an empty slice, not an error.
func (r *CatalogRepository) List(typeFilter string) []*models.Experience {
	result := make([]*models.Experience, 0, len(r.order))
	for _, id := range r.order {
		exp := r.experiences[id]
		if typeFilter != "" && string(exp.Type) != typeFilter {
			continue
		}
		result = append(result, exp)
	}
	return result
}

// GetByID returns the experience with the given id
func (r *CatalogRepository) GetByID(id string) (*models.Experience, error) {
	exp, ok := r.experiences[id]
	if !ok {
		return nil, models.ErrExperienceNotFound
	}
	return exp, nil
}
