package services

import (
	"sort"
	"testing"
	"time"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

func sampleCatalog() []*models.CatalogEntry {
	now := time.Now()
	return []*models.CatalogEntry{
		{ID: 1, Title: "React Basics", TeacherName: "Sok Dara", Category: "Development", Price: 49.99, Level: models.LevelBeginner, Rating: 4.5, EnrolledCount: 320, CreatedAt: now.AddDate(0, -6, 0)},
		{ID: 2, Title: "Advanced Go", TeacherName: "Chan Lina", Category: "Development", Price: 79.99, Level: models.LevelAdvanced, Rating: 4.8, EnrolledCount: 150, CreatedAt: now.AddDate(0, -2, 0)},
		{ID: 3, Title: "Watercolor Painting", TeacherName: "Kim Sreyneang", Category: "Design", Price: 0, IsFree: true, Level: models.LevelBeginner, Rating: 4.2, EnrolledCount: 510, CreatedAt: now.AddDate(-1, 0, 0)},
		{ID: 4, Title: "Intro to SQL", TeacherName: "Sok Dara", Category: "Development", Price: 19.99, Level: models.LevelIntermediate, Rating: 3.9, EnrolledCount: 150, IsNew: true, CreatedAt: now},
		{ID: 5, Title: "UI Design Systems", TeacherName: "Chan Lina", Category: "Design", Price: 59.99, Level: models.LevelIntermediate, Rating: 4.8, EnrolledCount: 90, IsNew: true, CreatedAt: now},
	}
}

func ids(entries []*models.CatalogEntry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a []int64, b ...int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyCatalogFilterSearchMatchesTitleAndTeacher(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	f.SearchQuery = "go"

	got := ApplyCatalogFilter(entries, f)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only course 2, got %v", ids(got))
	}

	// teacher name matches too, case-insensitive
	f.SearchQuery = "sok"
	got = ApplyCatalogFilter(entries, f)
	if len(got) != 2 {
		t.Fatalf("expected 2 courses taught by Sok Dara, got %v", ids(got))
	}
}

func TestApplyCatalogFilterCombinesAllPredicates(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	f.Category = "Development"
	f.PriceMin = 10
	f.PriceMax = 60
	f.Levels = map[models.CourseLevel]bool{
		models.LevelBeginner:     true,
		models.LevelIntermediate: true,
	}

	got := ApplyCatalogFilter(entries, f)
	if !equalIDs(ids(got), 1, 4) {
		t.Fatalf("expected courses 1 and 4 (popular order), got %v", ids(got))
	}
}

func TestApplyCatalogFilterPriceRangeInclusive(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	f.PriceMin = 19.99
	f.PriceMax = 49.99

	got := ApplyCatalogFilter(entries, f)
	for _, e := range got {
		if e.Price < 19.99 || e.Price > 49.99 {
			t.Fatalf("course %d price %v outside inclusive range", e.ID, e.Price)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected boundary prices included, got %v", ids(got))
	}
}

func TestApplyCatalogFilterEmptyLevelsAdmitsAll(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	got := ApplyCatalogFilter(entries, f)
	if len(got) != len(entries) {
		t.Fatalf("default filter should keep all %d entries, got %d", len(entries), len(got))
	}
}

func TestApplyCatalogFilterDoesNotMutateInput(t *testing.T) {
	entries := sampleCatalog()
	before := ids(entries)

	f := DefaultCatalogFilter()
	f.SortBy = models.SortPriceHigh
	ApplyCatalogFilter(entries, f)

	if !equalIDs(before, ids(entries)...) {
		t.Fatalf("input order changed: %v", ids(entries))
	}
}

func TestApplyCatalogFilterSortStability(t *testing.T) {
	entries := sampleCatalog()

	// courses 2 and 4 share enrolled count 150; popularity sort must
	// keep their original relative order
	f := DefaultCatalogFilter()
	got := ApplyCatalogFilter(entries, f)
	if !equalIDs(ids(got), 3, 1, 2, 4, 5) {
		t.Fatalf("unexpected popularity order: %v", ids(got))
	}

	// same for equal ratings under rating sort
	f.SortBy = models.SortRating
	got = ApplyCatalogFilter(entries, f)
	if !equalIDs(ids(got), 2, 5, 1, 3, 4) {
		t.Fatalf("unexpected rating order: %v", ids(got))
	}
}

func TestApplyCatalogFilterSortNewPutsNewFirst(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	f.SortBy = models.SortNew
	got := ApplyCatalogFilter(entries, f)

	if !got[0].IsNew || !got[1].IsNew {
		t.Fatalf("new courses should lead: %v", ids(got))
	}
	if !equalIDs(ids(got), 4, 5, 1, 2, 3) {
		t.Fatalf("unexpected new-first order: %v", ids(got))
	}
}

func TestApplyCatalogFilterSortPrice(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	f.SortBy = models.SortPriceLow
	got := ApplyCatalogFilter(entries, f)
	if !equalIDs(ids(got), 3, 4, 1, 5, 2) {
		t.Fatalf("unexpected price-low order: %v", ids(got))
	}

	f.SortBy = models.SortPriceHigh
	got = ApplyCatalogFilter(entries, f)
	if !equalIDs(ids(got), 2, 5, 1, 4, 3) {
		t.Fatalf("unexpected price-high order: %v", ids(got))
	}
}

func TestApplyCatalogFilterIdempotent(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	f.Category = "Design"
	f.SortBy = models.SortRating

	once := ApplyCatalogFilter(entries, f)
	twice := ApplyCatalogFilter(once, f)
	if !equalIDs(ids(once), ids(twice)...) {
		t.Fatalf("re-applying the same filter changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestApplyCatalogFilterEmptyResultAndReset(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	f.SearchQuery = "no such course"
	got := ApplyCatalogFilter(entries, f)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}

	// reset restores the defaults and the full list
	f = DefaultCatalogFilter()
	if f.SearchQuery != "" || f.Category != "All" || f.PriceMin != 0 || f.PriceMax != 100 || len(f.Levels) != 0 {
		t.Fatalf("unexpected default filter: %+v", f)
	}
	got = ApplyCatalogFilter(entries, f)
	if len(got) != len(entries) {
		t.Fatalf("reset should restore the full list, got %v", ids(got))
	}
}

func TestApplyCatalogFilterCommutesWithSortingAsSets(t *testing.T) {
	entries := sampleCatalog()

	f := DefaultCatalogFilter()
	f.Category = "Development"
	f.PriceMin = 10
	f.PriceMax = 80

	for _, sortBy := range []models.CatalogSort{
		models.SortPopular, models.SortNew, models.SortRating, models.SortPriceLow, models.SortPriceHigh,
	} {
		sortOnly := DefaultCatalogFilter()
		sortOnly.SortBy = sortBy
		presorted := ApplyCatalogFilter(entries, sortOnly)

		f.SortBy = sortBy
		fromSorted := ids(ApplyCatalogFilter(presorted, f))
		fromUnsorted := ids(ApplyCatalogFilter(entries, f))

		sort.Slice(fromSorted, func(i, j int) bool { return fromSorted[i] < fromSorted[j] })
		sort.Slice(fromUnsorted, func(i, j int) bool { return fromUnsorted[i] < fromUnsorted[j] })
		if !equalIDs(fromSorted, fromUnsorted...) {
			t.Fatalf("sort %q: filtering a pre-sorted catalog selected %v, unsorted selected %v", sortBy, fromSorted, fromUnsorted)
		}
	}
}
