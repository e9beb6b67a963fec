package query_test

import (
	"reflect"
	"testing"

	"github.com/ferdiebergado/fundlist/internal/query"
)

func ptr[T any](v T) *T {
	return &v
}

func TestAndOr_Collapse(t *testing.T) {
	t.Parallel()

	eq := query.Eq("plan", "direct")

	tests := []struct {
		name string
		got  *query.Filter
		want string
	}{
		{"empty and", query.And(), "true"},
		{"and of nils", query.And(nil, nil), "true"},
		{"single child", query.And(nil, eq), "plan = direct"},
		{"nested and flattens", query.And(query.And(eq, query.Eq("option", "growth")), query.Eq("rating", 5)),
			"(plan = direct and option = growth and rating = 5)"},
		{"or inside and kept", query.And(eq, query.Or(query.Eq("a", 1), query.Eq("b", 2))),
			"(plan = direct and (a = 1 or b = 2))"},
		{"open range", query.Range("aum", nil, nil), "true"},
		{"half range", query.Range("aum", ptr(10.0), nil), "aum in [10, *]"},
		{"in with one value is eq", query.In("category", "Equity"), "category = Equity"},
		{"in with no values", query.In[string]("category"), "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.got.String(); got != tt.want {
				t.Errorf("filter.String() = %q, want: %q", got, tt.want)
			}
		})
	}
}

func TestFilter_Without(t *testing.T) {
	t.Parallel()

	f := query.And(
		query.In("category", "Equity", "Debt"),
		query.Eq("plan", "direct"),
		query.Or(query.Match("name", "hdfc"), query.Match("category", "hdfc")),
	)

	tests := []struct {
		name, field, want string
	}{
		{"drops leaf", "plan", `(category in [Equity Debt] and (name ~* "hdfc" or category ~* "hdfc"))`},
		{"drops inside or", "category", `(plan = direct and name ~* "hdfc")`},
		{"absent field unchanged", "rating", f.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := f.Without(tt.field).String(); got != tt.want {
				t.Errorf("f.Without(%q) = %q, want: %q", tt.field, got, tt.want)
			}
		})
	}

	var nilFilter *query.Filter
	if got := nilFilter.Without("plan"); got != nil {
		t.Errorf("nil.Without(%q) = %v, want: nil", "plan", got)
	}
}

func TestFilter_Fields(t *testing.T) {
	t.Parallel()

	f := query.And(
		query.Eq("plan", "direct"),
		query.Or(query.Match("name", "x"), query.Match("fundHouse", "x")),
		query.Or(query.Match("name", "y"), query.Match("fundHouse", "y")),
	)

	got, want := f.Fields(), []string{"plan", "name", "fundHouse"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("f.Fields() = %v, want: %v", got, want)
	}
}
