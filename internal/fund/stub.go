package fund

import (
	"context"
	"errors"

	"github.com/ferdiebergado/fundlist/internal/query"
)

type StubService struct {
	ListFunc func(ctx context.Context, params ListParams) (*ListResult, error)
	PingFunc func(ctx context.Context) error
}

var _ Service = &StubService{}

func (s *StubService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, params)
}

func (s *StubService) Ping(ctx context.Context) error {
	if s.PingFunc == nil {
		return errors.New("Ping() not implemented by stub")
	}
	return s.PingFunc(ctx)
}

type StubRepo struct {
	FindFunc  func(ctx context.Context, q Query) ([]Fund, error)
	CountFunc func(ctx context.Context, f *query.Filter) (int, error)
	FacetFunc func(ctx context.Context, field string, f *query.Filter) ([]FacetBucket, error)
	StatsFunc func(ctx context.Context, f *query.Filter) (Stats, error)
	PingFunc  func(ctx context.Context) error
}

var _ Repository = &StubRepo{}

func (r *StubRepo) Find(ctx context.Context, q Query) ([]Fund, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, q)
}

func (r *StubRepo) Count(ctx context.Context, f *query.Filter) (int, error) {
	if r.CountFunc == nil {
		return 0, errors.New("Count() not implemented by stub")
	}
	return r.CountFunc(ctx, f)
}

func (r *StubRepo) Facet(ctx context.Context, field string, f *query.Filter) ([]FacetBucket, error) {
	if r.FacetFunc == nil {
		return nil, errors.New("Facet() not implemented by stub")
	}
	return r.FacetFunc(ctx, field, f)
}

func (r *StubRepo) Stats(ctx context.Context, f *query.Filter) (Stats, error) {
	if r.StatsFunc == nil {
		return Stats{}, errors.New("Stats() not implemented by stub")
	}
	return r.StatsFunc(ctx, f)
}

func (r *StubRepo) Ping(ctx context.Context) error {
	if r.PingFunc == nil {
		return errors.New("Ping() not implemented by stub")
	}
	return r.PingFunc(ctx)
}
