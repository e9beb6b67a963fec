package fund

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ferdiebergado/fundlist/internal/query"
	"golang.org/x/sync/errgroup"
)

// FacetFields are the fields with term facets, each counted over the current
// filter minus its own condition.
var FacetFields = []string{FieldCategory, FieldFundHouse, FieldRiskLevel}

// Query is one page of a filtered, sorted fund listing.
type Query struct {
	Filter *query.Filter
	Sort   query.Sort
	Page   query.Page
}

type FacetBucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Bounds is the observed minimum and maximum of a numeric field. Both are nil
// when no document matched.
type Bounds struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type Stats struct {
	AUM          Bounds `json:"aum"`
	ExpenseRatio Bounds `json:"expenseRatio"`
}

// Repository is the read interface of the funds collection.
type Repository interface {
	Find(ctx context.Context, q Query) ([]Fund, error)
	Count(ctx context.Context, f *query.Filter) (int, error)
	Facet(ctx context.Context, field string, f *query.Filter) ([]FacetBucket, error)
	Stats(ctx context.Context, f *query.Filter) (Stats, error)
	Ping(ctx context.Context) error
}

type Facets struct {
	Category  []FacetBucket `json:"category"`
	FundHouse []FacetBucket `json:"fundHouse"`
	RiskLevel []FacetBucket `json:"riskLevel"`
	Ranges    Stats         `json:"ranges"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

func newPagination(p query.Page, total int) Pagination {
	return Pagination{
		Page:       p.Number,
		Limit:      p.Size,
		Total:      total,
		TotalPages: p.TotalPages(total),
		HasNext:    p.HasNext(total),
		HasPrev:    p.HasPrev(),
	}
}

type ListResult struct {
	Funds      []Fund
	Pagination Pagination
	Filters    AppliedFilters
	Facets     *Facets
}

type service struct {
	repo    Repository
	timeout time.Duration
}

// NewService returns a Service reading from repo. A positive timeout bounds
// every List call on top of the caller's context.
func NewService(repo Repository, timeout time.Duration) *service {
	return &service{
		repo:    repo,
		timeout: timeout,
	}
}

var _ Service = &service{}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	filter := params.Filter()
	q := Query{Filter: filter, Sort: params.Sort(), Page: params.Window()}
	slog.Debug("Listing funds...", "filter", filter, "sort", q.Sort, "page", q.Page)

	var (
		funds []Fund
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if funds, err = s.repo.Find(gctx, q); err != nil {
			return fmt.Errorf("find funds: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = s.repo.Count(gctx, filter); err != nil {
			return fmt.Errorf("count funds: %w", err)
		}
		return nil
	})

	var facets *Facets
	if params.WantFacets() {
		facets = &Facets{}
		targets := map[string]*[]FacetBucket{
			FieldCategory:  &facets.Category,
			FieldFundHouse: &facets.FundHouse,
			FieldRiskLevel: &facets.RiskLevel,
		}
		for _, field := range FacetFields {
			dst := targets[field]
			g.Go(func() error {
				buckets, err := s.repo.Facet(gctx, field, filter.Without(field))
				if err != nil {
					return fmt.Errorf("facet %s: %w", field, err)
				}
				*dst = nonNil(buckets)
				return nil
			})
		}
		g.Go(func() error {
			stats, err := s.repo.Stats(gctx, filter)
			if err != nil {
				return fmt.Errorf("fund stats: %w", err)
			}
			facets.Ranges = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListResult{
		Funds:      nonNil(funds),
		Pagination: newPagination(q.Page, total),
		Filters:    params.Applied(),
		Facets:     facets,
	}, nil
}

func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
