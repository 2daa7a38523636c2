// Package catalog supplies the fixed, built-in checklist entries per
// category. It is pure data: the sync engine turns it into the baseline
// working set at startup, and everything else flows from persisted state.
package catalog

import "github.com/dmitrijs2005/adventures/internal/models"

// Catalog maps a category id to its ordered list of place names.
type Catalog map[string][]string

// Default returns the built-in catalog with all four categories.
func Default() Catalog {
	return Catalog{
		models.CategoryWAParks:       waStateParks,
		models.CategoryUSStates:      usStates,
		models.CategoryNationalParks: nationalParks,
		models.CategoryCountries:     countries,
	}
}

// Categories returns the category ids present in the catalog.
func (c Catalog) Categories() []string {
	result := make([]string, 0, len(c))
	for category := range c {
		result = append(result, category)
	}
	return result
}

// Baseline expands the catalog into per-category adventure lists. Every
// entry starts unvisited with no optional fields; the item id equals the
// display name.
func (c Catalog) Baseline() map[string][]models.Adventure {
	result := make(map[string][]models.Adventure, len(c))
	for category, names := range c {
		items := make([]models.Adventure, len(names))
		for i, name := range names {
			items[i] = models.Adventure{ID: name, Name: name}
		}
		result[category] = items
	}
	return result
}
