package error_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errx "github.com/ferdiebergado/fundlist/internal/pkg/error"
)

func TestIsContextError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"wrapped deadline", fmt.Errorf("find funds: %w", context.DeadlineExceeded), true},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		if got := errx.IsContextError(tt.err); got != tt.want {
			t.Errorf("errx.IsContextError(%v) = %v, want: %v", tt.err, got, tt.want)
		}
	}
}
