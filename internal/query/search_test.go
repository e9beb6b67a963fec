package query_test

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/ferdiebergado/fundlist/internal/query"
)

func TestEscapeRegex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, input, text string
		wantMatch         bool
	}{
		{"plain", "hdfc", "HDFC Flexi Cap", true},
		{"dot is literal", "a.c", "abc", false},
		{"dot matches dot", "a.c", "a.c fund", true},
		{"star is literal", "s&p*", "S&P 500 index", false},
		{"parens", "(idcw)", "Growth (IDCW) plan", true},
		{"anchors", "^nifty$", "nifty", false},
		{"brackets", "[a-z]", "x", false},
		{"backslash", `c:\x`, `path c:\x`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			re := regexp.MustCompile("(?i)" + query.EscapeRegex(tt.input))
			if got := re.MatchString(tt.text); got != tt.wantMatch {
				t.Errorf("match(%q, %q) = %v, want: %v", query.EscapeRegex(tt.input), tt.text, got, tt.wantMatch)
			}
		})
	}
}

func TestFuzzyPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, input, text string
		wantMatch         bool
	}{
		{"subsequence", "hdfc", "H D F C Flexi", true},
		{"contiguous", "hdfc", "hdfc", true},
		{"out of order", "hdfc", "cfdh", false},
		{"metacharacters escaped", "a+b", "a plus b", false},
		{"metacharacters literal", "a+b", "a++b", true},
		{"whitespace ignored", "s b i", "SBI Bluechip", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pattern := query.FuzzyPattern(tt.input)
			re := regexp.MustCompile("(?i)" + pattern)
			if got := re.MatchString(tt.text); got != tt.wantMatch {
				t.Errorf("match(%q, %q) = %v, want: %v", pattern, tt.text, got, tt.wantMatch)
			}
		})
	}
}

func TestSearchWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, term string
		want       []string
	}{
		{"blank", "   ", nil},
		{"splits on whitespace", " axis \t bluechip ", []string{"axis", "bluechip"}},
		{"drops duplicates case-insensitively", "Axis axis AXIS fund", []string{"Axis", "fund"}},
		{"caps word count", "a b c d e f g h i j", []string{"a", "b", "c", "d", "e", "f", "g", "h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := query.SearchWords(tt.term); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("query.SearchWords(%q) = %q, want: %q", tt.term, got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, term string
		fuzzy      bool
		fields     []string
		want       string
	}{
		{"blank term", " ", false, []string{"name"}, "true"},
		{"no fields", "axis", false, nil, "true"},
		{"one word one field", "axis", false, []string{"name"}, `name ~* "axis"`},
		{"words across fields", "axis mid", false, []string{"name", "fundHouse"},
			`((name ~* "axis" or fundHouse ~* "axis") and (name ~* "mid" or fundHouse ~* "mid"))`},
		{"escapes input", "a.b", false, []string{"name"}, `name ~* "a\\.b"`},
		{"fuzzy", "sbi", true, []string{"name"}, `name ~* "s.*b.*i"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := query.Search(tt.term, tt.fuzzy, tt.fields...).String()
			if got != tt.want {
				t.Errorf("query.Search(%q, %v, %v) = %s, want: %s", tt.term, tt.fuzzy, tt.fields, got, tt.want)
			}
		})
	}
}
