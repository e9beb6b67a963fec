package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownField   = errors.New("query: unknown field")
	ErrInvalidPattern = errors.New("query: invalid pattern")
)

// Columns maps filter field names to SQL column names. Only mapped fields can
// appear in compiled SQL.
type Columns map[string]string

func (c Columns) column(field string) (string, error) {
	col, ok := c[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return QuoteIdent(col), nil
}

// QuoteIdent quotes a PostgreSQL identifier. "t.name" becomes "t"."name".
func QuoteIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}

// Where compiles f into a boolean SQL expression using positional
// placeholders numbered from $1. A nil filter compiles to "".
func Where(f *Filter, cols Columns) (string, []any, error) {
	if f == nil {
		return "", nil, nil
	}

	c := &compiler{cols: cols}
	expr, err := c.compile(f)
	if err != nil {
		return "", nil, err
	}
	return expr, c.args, nil
}

// OrderBy compiles s into an ORDER BY list, always ending with the tie-breaker.
func OrderBy(s Sort, cols Columns) (string, error) {
	tie, err := cols.column(TieBreaker)
	if err != nil {
		return "", err
	}

	if s.Field == "" || s.Field == TieBreaker {
		return tie + " " + strings.ToUpper(s.Direction()), nil
	}

	col, err := cols.column(s.Field)
	if err != nil {
		return "", err
	}

	if s.Fold {
		col = fmt.Sprintf(`lower(%s) COLLATE "C"`, col)
	}

	return fmt.Sprintf("%s %s NULLS LAST, %s ASC", col, strings.ToUpper(s.Direction()), tie), nil
}

type compiler struct {
	cols Columns
	args []any
}

func (c *compiler) bind(v any) string {
	c.args = append(c.args, v)
	return "$" + strconv.Itoa(len(c.args))
}

func (c *compiler) compile(f *Filter) (string, error) {
	switch f.op {
	case OpAnd, OpOr:
		sep := " AND "
		if f.op == OpOr {
			sep = " OR "
		}
		parts := make([]string, 0, len(f.children))
		for _, child := range f.children {
			part, err := c.compile(child)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
		return "(" + strings.Join(parts, sep) + ")", nil
	}

	col, err := c.cols.column(f.field)
	if err != nil {
		return "", err
	}

	switch f.op {
	case OpEq:
		if s, ok := f.values[0].(string); ok {
			return fmt.Sprintf("lower(%s) = %s", col, c.bind(strings.ToLower(s))), nil
		}
		return fmt.Sprintf("%s = %s", col, c.bind(f.values[0])), nil

	case OpIn:
		lhs, fold := col, allStrings(f.values)
		if fold {
			lhs = "lower(" + col + ")"
		}
		placeholders := make([]string, 0, len(f.values))
		for _, v := range f.values {
			if fold {
				v = strings.ToLower(v.(string))
			}
			placeholders = append(placeholders, c.bind(v))
		}
		return fmt.Sprintf("%s IN (%s)", lhs, strings.Join(placeholders, ", ")), nil

	case OpRange:
		var conds []string
		if f.min != nil {
			conds = append(conds, fmt.Sprintf("%s >= %s", col, c.bind(*f.min)))
		}
		if f.max != nil {
			conds = append(conds, fmt.Sprintf("%s <= %s", col, c.bind(*f.max)))
		}
		return "(" + strings.Join(conds, " AND ") + ")", nil

	case OpMatch:
		if f.re == nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidPattern, f.pattern)
		}
		return fmt.Sprintf("%s ~* %s", col, c.bind(f.pattern)), nil

	default:
		return "", fmt.Errorf("query: unsupported op %s", f.op)
	}
}

func allStrings(vs []any) bool {
	for _, v := range vs {
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return true
}
