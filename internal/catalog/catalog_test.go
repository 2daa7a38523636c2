package catalog

import (
	"testing"

	"github.com/dmitrijs2005/adventures/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasAllCategories(t *testing.T) {
	c := Default()

	assert.ElementsMatch(t, []string{
		models.CategoryWAParks,
		models.CategoryUSStates,
		models.CategoryNationalParks,
		models.CategoryCountries,
	}, c.Categories())

	assert.Len(t, c[models.CategoryUSStates], 50)
	assert.Len(t, c[models.CategoryNationalParks], 63)
	assert.NotEmpty(t, c[models.CategoryWAParks])
	assert.NotEmpty(t, c[models.CategoryCountries])
}

func TestBaseline_EveryEntryStartsUnvisited(t *testing.T) {
	c := Default()
	baseline := c.Baseline()

	require.Len(t, baseline, len(c))
	for category, items := range baseline {
		require.Len(t, items, len(c[category]))
		for _, item := range items {
			assert.Equal(t, item.Name, item.ID, "item id equals the display name")
			assert.False(t, item.Visited)
			assert.Empty(t, item.DateVisited)
			assert.Empty(t, item.Images)
		}
	}
}

func TestBaseline_PreservesCatalogOrder(t *testing.T) {
	c := Default()
	baseline := c.Baseline()

	for i, name := range c[models.CategoryUSStates] {
		assert.Equal(t, name, baseline[models.CategoryUSStates][i].Name)
	}
}
