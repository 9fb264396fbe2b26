package helpers

import "testing"

func TestNewPaginationInfo_TotalPages(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	if info.TotalPages != 3 {
		t.Fatalf("expected 3 pages got %d", info.TotalPages)
	}
	if info.CurrentPage != 2 || info.PageSize != 10 || info.TotalItems != 25 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestNewPaginationInfo_EmptyListStillHasOnePage(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Fatalf("expected 1 page for empty list got %d", info.TotalPages)
	}
}

func TestNewPaginationInfo_PageClampedToTotal(t *testing.T) {
	info := NewPaginationInfo(5, 9, 10)
	if info.CurrentPage != 1 {
		t.Fatalf("expected current page clamped to 1 got %d", info.CurrentPage)
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	if offset != 40 || limit != 20 {
		t.Fatalf("expected offset=40 limit=20 got %d/%d", offset, limit)
	}

	offset, limit = CalculateOffsetLimit(0, 500)
	if offset != 0 || limit != DefaultPageSize {
		t.Fatalf("invalid params must fall back to defaults, got %d/%d", offset, limit)
	}
}

func TestPageOf_SlicesWithoutMutating(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := PageOf(items, 2, 2)
	if len(page) != 2 || page[0] != 3 || page[1] != 4 {
		t.Fatalf("unexpected page: %v", page)
	}
	if len(items) != 5 {
		t.Fatalf("input must not be mutated")
	}
}

func TestPageOf_PastEndIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}
	if page := PageOf(items, 5, 10); len(page) != 0 {
		t.Fatalf("expected empty page got %v", page)
	}
	if page := PageOf([]int{}, 1, 10); len(page) != 0 {
		t.Fatalf("expected empty page for empty input got %v", page)
	}
}

func TestPageOf_LastPartialPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	page := PageOf(items, 3, 2)
	if len(page) != 1 || page[0] != "e" {
		t.Fatalf("unexpected last page: %v", page)
	}
}
