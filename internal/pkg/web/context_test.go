package web_test

import (
	"context"
	"testing"

	"github.com/ferdiebergado/fundlist/internal/pkg/web"
)

func TestParamsFromContext(t *testing.T) {
	t.Parallel()

	ctx := web.NewContextWithParams(context.Background(), item{Name: "x"})

	got, err := web.ParamsFromContext[item](ctx)
	if err != nil {
		t.Fatalf("web.ParamsFromContext() error = %v, want: nil", err)
	}
	if got.Name != "x" {
		t.Errorf("got.Name = %q, want: %q", got.Name, "x")
	}

	if _, err := web.ParamsFromContext[*item](ctx); err == nil {
		t.Error("web.ParamsFromContext[*item]() error = nil, want: error")
	}

	if _, err := web.ParamsFromContext[item](context.Background()); err == nil {
		t.Error("web.ParamsFromContext() on empty context error = nil, want: error")
	}
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	if got := web.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("web.RequestIDFromContext() = %q, want: empty", got)
	}

	ctx := web.NewContextWithRequestID(context.Background(), "abc")
	if got := web.RequestIDFromContext(ctx); got != "abc" {
		t.Errorf("web.RequestIDFromContext() = %q, want: %q", got, "abc")
	}
}
