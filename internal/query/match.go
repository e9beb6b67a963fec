package query

import (
	"cmp"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Document exposes named fields to in-memory evaluation. A nil value or
// ok == false both mean the field is missing.
type Document interface {
	Field(name string) (any, bool)
}

// Matches reports whether doc satisfies f. A nil filter matches every document.
func (f *Filter) Matches(doc Document) bool {
	if f == nil {
		return true
	}

	switch f.op {
	case OpAnd:
		for _, c := range f.children {
			if !c.Matches(doc) {
				return false
			}
		}
		return true
	case OpOr:
		for _, c := range f.children {
			if c.Matches(doc) {
				return true
			}
		}
		return false
	}

	v, ok := lookup(doc, f.field)
	if !ok {
		return false
	}

	switch f.op {
	case OpEq, OpIn:
		for _, want := range f.values {
			if equal(v, want) {
				return true
			}
		}
		return false
	case OpRange:
		n, ok := toFloat(v)
		if !ok {
			return false
		}
		if f.min != nil && n < *f.min {
			return false
		}
		if f.max != nil && n > *f.max {
			return false
		}
		return true
	case OpMatch:
		s, ok := v.(string)
		return ok && f.re != nil && f.re.MatchString(s)
	default:
		return false
	}
}

// Compare orders two documents by s. Missing values sort last regardless of
// direction and ties fall back to the TieBreaker field ascending.
func Compare(a, b Document, s Sort) int {
	if s.Field != "" && s.Field != TieBreaker {
		av, aok := lookup(a, s.Field)
		bv, bok := lookup(b, s.Field)
		switch {
		case !aok && !bok:
		case !aok:
			return 1
		case !bok:
			return -1
		default:
			if c := compareValues(av, bv, s.Fold); c != 0 {
				if s.Desc {
					return -c
				}
				return c
			}
		}
	}

	av, _ := lookup(a, TieBreaker)
	bv, _ := lookup(b, TieBreaker)
	c := compareValues(av, bv, false)
	if s.Desc && (s.Field == "" || s.Field == TieBreaker) {
		return -c
	}
	return c
}

// lookup resolves a field and dereferences pointers, treating nil as missing.
func lookup(doc Document, field string) (any, bool) {
	v, ok := doc.Field(field)
	if !ok || v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		return rv.Elem().Interface(), true
	}
	return v, true
}

func equal(v, want any) bool {
	if s, ok := v.(string); ok {
		w, ok := want.(string)
		return ok && strings.EqualFold(s, w)
	}

	if a, ok := toFloat(v); ok {
		b, ok := toFloat(want)
		return ok && a == b
	}

	return v == want
}

func compareValues(a, b any, fold bool) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			if fold {
				av, bv = strings.ToLower(av), strings.ToLower(bv)
			}
			return cmp.Compare(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	an, aok := toFloat(a)
	bn, bok := toFloat(b)
	if aok && bok {
		return cmp.Compare(an, bn)
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	default:
		return 0, false
	}
}
