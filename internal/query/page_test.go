package query_test

import (
	"math"
	"testing"

	"github.com/ferdiebergado/fundlist/internal/query"
)

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		number, size int
		want         query.Page
	}{
		{"defaults", 0, 0, query.Page{Number: 1, Size: query.DefaultPageSize}},
		{"negative number", -3, 10, query.Page{Number: 1, Size: 10}},
		{"negative size", 2, -1, query.Page{Number: 2, Size: query.DefaultPageSize}},
		{"size above max", 1, 1000, query.Page{Number: 1, Size: query.MaxPageSize}},
		{"in range", 4, 25, query.Page{Number: 4, Size: 25}},
		{"number too large for an offset", math.MaxInt, 20, query.Page{Number: math.MaxInt / 20, Size: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := query.NewPage(tt.number, tt.size); got != tt.want {
				t.Errorf("query.NewPage(%d, %d) = %+v, want: %+v", tt.number, tt.size, got, tt.want)
			}
		})
	}
}

func TestPage_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		page                query.Page
		total               int
		offset, totalPages  int
		hasNext, hasPrev    bool
	}{
		{"empty result", query.NewPage(1, 20), 0, 0, 0, false, false},
		{"exact multiple", query.NewPage(2, 10), 30, 10, 3, true, true},
		{"partial last page", query.NewPage(3, 10), 25, 20, 3, false, true},
		{"past the end", query.NewPage(9, 10), 25, 80, 3, false, true},
		{"largest page", query.NewPage(math.MaxInt, 20), 25, (math.MaxInt/20 - 1) * 20, 2, false, true},
		{"unclamped page saturates", query.Page{Number: math.MaxInt, Size: 20}, 25, math.MaxInt, 2, false, true},
		{"zero value", query.Page{}, 25, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.page.Offset(); got != tt.offset {
				t.Errorf("page.Offset() = %d, want: %d", got, tt.offset)
			}
			if got := tt.page.TotalPages(tt.total); got != tt.totalPages {
				t.Errorf("page.TotalPages(%d) = %d, want: %d", tt.total, got, tt.totalPages)
			}
			if got := tt.page.HasNext(tt.total); got != tt.hasNext {
				t.Errorf("page.HasNext(%d) = %v, want: %v", tt.total, got, tt.hasNext)
			}
			if got := tt.page.HasPrev(); got != tt.hasPrev {
				t.Errorf("page.HasPrev() = %v, want: %v", got, tt.hasPrev)
			}
		})
	}
}
