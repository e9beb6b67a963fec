// Package query builds store-agnostic filters, sort orders and page windows.
//
// A Filter is a small condition tree. The same tree is compiled to a SQL
// WHERE clause by Where and evaluated in memory by Filter.Matches, and both
// must agree on the result for any document.
package query

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// Op identifies the kind of a Filter node.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpEq
	OpIn
	OpRange
	OpMatch
)

func (o Op) String() string {
	switch o {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpEq:
		return "eq"
	case OpIn:
		return "in"
	case OpRange:
		return "range"
	case OpMatch:
		return "match"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Filter is an immutable condition tree. A nil *Filter matches everything.
type Filter struct {
	op       Op
	field    string
	values   []any
	min, max *float64
	pattern  string
	re       *regexp.Regexp
	children []*Filter
}

// Eq matches documents whose field equals v. Strings compare case-insensitively.
func Eq(field string, v any) *Filter {
	return &Filter{op: OpEq, field: field, values: []any{v}}
}

// In matches documents whose field equals any of vs. An empty list yields nil.
func In[T any](field string, vs ...T) *Filter {
	if len(vs) == 0 {
		return nil
	}

	values := make([]any, 0, len(vs))
	for _, v := range vs {
		values = append(values, v)
	}

	if len(values) == 1 {
		return Eq(field, values[0])
	}

	return &Filter{op: OpIn, field: field, values: values}
}

// Range matches documents whose numeric field lies within [lo, hi].
// A nil bound is open. When both bounds are nil, Range returns nil.
func Range(field string, lo, hi *float64) *Filter {
	if lo == nil && hi == nil {
		return nil
	}
	return &Filter{op: OpRange, field: field, min: lo, max: hi}
}

// Match matches documents whose string field matches the case-insensitive
// regular expression pattern. The pattern must be valid for both RE2 and
// PostgreSQL advanced regular expressions; callers building patterns from
// user input should go through EscapeRegex or FuzzyPattern.
func Match(field, pattern string) *Filter {
	f := &Filter{op: OpMatch, field: field, pattern: pattern}
	if re, err := regexp.Compile("(?i)" + pattern); err == nil {
		f.re = re
	}
	return f
}

// And combines filters so that all of them must match.
func And(fs ...*Filter) *Filter {
	return combine(OpAnd, fs)
}

// Or combines filters so that at least one of them must match.
func Or(fs ...*Filter) *Filter {
	return combine(OpOr, fs)
}

func combine(op Op, fs []*Filter) *Filter {
	children := make([]*Filter, 0, len(fs))
	for _, f := range fs {
		if f == nil {
			continue
		}
		if f.op == op {
			children = append(children, f.children...)
			continue
		}
		children = append(children, f)
	}

	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return &Filter{op: op, children: children}
	}
}

// Op returns the kind of the root node.
func (f *Filter) Op() Op {
	return f.op
}

// Field returns the field a leaf condition applies to, or "" for And/Or.
func (f *Filter) Field() string {
	if f == nil {
		return ""
	}
	return f.field
}

// Without returns a copy of f with every condition on field removed.
func (f *Filter) Without(field string) *Filter {
	if f == nil {
		return nil
	}

	switch f.op {
	case OpAnd, OpOr:
		kept := make([]*Filter, 0, len(f.children))
		for _, c := range f.children {
			kept = append(kept, c.Without(field))
		}
		return combine(f.op, kept)
	default:
		if f.field == field {
			return nil
		}
		return f
	}
}

// Fields lists the distinct fields referenced by f in first-seen order.
func (f *Filter) Fields() []string {
	var fields []string
	f.walk(func(n *Filter) {
		if n.field != "" && !slices.Contains(fields, n.field) {
			fields = append(fields, n.field)
		}
	})
	return fields
}

func (f *Filter) walk(fn func(*Filter)) {
	if f == nil {
		return
	}
	fn(f)
	for _, c := range f.children {
		c.walk(fn)
	}
}

func (f *Filter) String() string {
	if f == nil {
		return "true"
	}

	switch f.op {
	case OpAnd, OpOr:
		parts := make([]string, 0, len(f.children))
		for _, c := range f.children {
			parts = append(parts, c.String())
		}
		return "(" + strings.Join(parts, " "+f.op.String()+" ") + ")"
	case OpEq:
		return fmt.Sprintf("%s = %v", f.field, f.values[0])
	case OpIn:
		return fmt.Sprintf("%s in %v", f.field, f.values)
	case OpRange:
		return fmt.Sprintf("%s in [%s, %s]", f.field, boundString(f.min), boundString(f.max))
	case OpMatch:
		return fmt.Sprintf("%s ~* %q", f.field, f.pattern)
	default:
		return f.op.String()
	}
}

func (f *Filter) LogValue() slog.Value {
	return slog.StringValue(f.String())
}

func boundString(b *float64) string {
	if b == nil {
		return "*"
	}
	return fmt.Sprintf("%g", *b)
}
