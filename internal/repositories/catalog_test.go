package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-booking-platform/internal/models"
)

func TestCatalogRepository_List(t *testing.T) {
	repo := NewCatalogRepository()

	all := repo.List("")
	require.Len(t, all, 6)
	assert.Equal(t, "Luxury Nile Cruise", all[0].Title, "insertion order must be preserved")
	assert.Equal(t, "Grand Egypt Discovery", all[5].Title)

	trips := repo.List("trip")
	require.Len(t, trips, 2)
	for _, exp := range trips {
		assert.Equal(t, models.ExperienceTrip, exp.Type)
	}

	assert.Empty(t, repo.List("safari"))
}

func TestCatalogRepository_GetByID(t *testing.T) {
	repo := NewCatalogRepository()
	all := repo.List("")

	exp, err := repo.GetByID(all[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Abu Simbel Adventure", exp.Title)
	assert.Equal(t, 1200, exp.Price)

	_, err = repo.GetByID("unknown-id")
	assert.ErrorIs(t, err, models.ErrExperienceNotFound)
}
