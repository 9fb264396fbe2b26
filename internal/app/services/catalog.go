package services

import (
	"sort"
	"strings"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

// CatalogFilter is the browse-screen filter and sort configuration.
// Category "All" means no category restriction; an empty Levels set
// admits every level.
type CatalogFilter struct {
	SearchQuery string
	Category    string
	PriceMin    float64
	PriceMax    float64
	Levels      map[models.CourseLevel]bool
	SortBy      models.CatalogSort
}

// DefaultCatalogFilter returns the filter state used before the user
// touches anything and after a filter reset.
func DefaultCatalogFilter() CatalogFilter {
	return CatalogFilter{
		SearchQuery: "",
		Category:    "All",
		PriceMin:    0,
		PriceMax:    100,
		Levels:      map[models.CourseLevel]bool{},
		SortBy:      models.SortPopular,
	}
}

// Matches reports whether a single catalog entry passes the filter.
func (f CatalogFilter) Matches(e *models.CatalogEntry) bool {
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.TeacherName), q) {
			return false
		}
	}
	if f.Category != "" && f.Category != "All" && e.Category != f.Category {
		return false
	}
	if e.Price < f.PriceMin || e.Price > f.PriceMax {
		return false
	}
	if len(f.Levels) > 0 && !f.Levels[e.Level] {
		return false
	}
	return true
}

// ApplyCatalogFilter produces the visible subset of entries in display
// order. The input slice is never mutated; ties keep their prior
// relative order.
func ApplyCatalogFilter(entries []*models.CatalogEntry, f CatalogFilter) []*models.CatalogEntry {
	result := make([]*models.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			result = append(result, e)
		}
	}

	switch f.SortBy {
	case models.SortNew:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].IsNew && !result[j].IsNew
		})
	case models.SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case models.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	default: // popularity
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EnrolledCount > result[j].EnrolledCount
		})
	}
	return result
}
