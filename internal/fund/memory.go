package fund

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/ferdiebergado/fundlist/internal/query"
)

var _ Repository = &MemoryRepository{}

// MemoryRepository keeps funds in process memory. Filters are evaluated with
// the same semantics as the SQL store.
type MemoryRepository struct {
	mu    sync.RWMutex
	funds []Fund
	index map[string]int
}

func NewMemoryRepository(funds ...Fund) *MemoryRepository {
	r := &MemoryRepository{index: make(map[string]int)}
	r.upsert(funds)
	return r
}

func (r *MemoryRepository) upsert(funds []Fund) {
	for _, f := range funds {
		f.normalize()
		if i, ok := r.index[f.ID]; ok {
			r.funds[i] = f
			continue
		}
		r.index[f.ID] = len(r.funds)
		r.funds = append(r.funds, f)
	}
}

// Save upserts funds by id.
func (r *MemoryRepository) Save(_ context.Context, funds []Fund) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upsert(funds)
	return nil
}

// matching returns the funds selected by f. Callers must hold the read lock.
func (r *MemoryRepository) matching(f *query.Filter) []Fund {
	var out []Fund
	for _, fund := range r.funds {
		if f.Matches(fund) {
			out = append(out, fund)
		}
	}
	return out
}

func (r *MemoryRepository) Find(ctx context.Context, q Query) ([]Fund, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := r.matching(q.Filter)
	r.mu.RUnlock()

	slices.SortStableFunc(matched, func(a, b Fund) int {
		return query.Compare(a, b, q.Sort)
	})

	start := max(0, min(q.Page.Offset(), len(matched)))
	end := min(start+q.Page.Size, len(matched))
	return slices.Clone(matched[start:end]), nil
}

func (r *MemoryRepository) Count(ctx context.Context, f *query.Filter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, fund := range r.funds {
		if f.Matches(fund) {
			total++
		}
	}
	return total, nil
}

func (r *MemoryRepository) Facet(ctx context.Context, field string, f *query.Filter) ([]FacetBucket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, ok := Columns[field]; !ok {
		return nil, fmt.Errorf("facet %q: %w", field, query.ErrUnknownField)
	}

	r.mu.RLock()
	counts := make(map[string]int)
	for _, fund := range r.matching(f) {
		v, _ := fund.Field(field)
		if s, ok := v.(string); ok && s != "" {
			counts[s]++
		}
	}
	r.mu.RUnlock()

	buckets := make([]FacetBucket, 0, len(counts))
	for value, count := range counts {
		buckets = append(buckets, FacetBucket{Value: value, Count: count})
	}
	slices.SortFunc(buckets, func(a, b FacetBucket) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Value, b.Value))
	})
	return buckets, nil
}

func (r *MemoryRepository) Stats(ctx context.Context, f *query.Filter) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var s Stats
	for _, fund := range r.matching(f) {
		s.AUM.add(fund.AUM.InexactFloat64())
		s.ExpenseRatio.add(fund.ExpenseRatio)
	}
	return s, nil
}

func (b *Bounds) add(v float64) {
	if b.Min == nil || v < *b.Min {
		b.Min = &v
	}
	if b.Max == nil || v > *b.Max {
		b.Max = &v
	}
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
