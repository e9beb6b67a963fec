package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/fundlist/internal/middleware"
	"github.com/ferdiebergado/fundlist/internal/pkg/web"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"Propagates caller id", "req-123", true},
		{"Generates when missing", "", false},
		{"Replaces oversized id", strings.Repeat("x", 200), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var ctxID string
			handler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				ctxID = web.RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.incoming != "" {
				req.Header.Set(web.HeaderRequestID, tc.incoming)
			}
			rec := httptest.NewRecorder()
			middleware.RequestID(handler).ServeHTTP(rec, req)

			gotHeader := rec.Header().Get(web.HeaderRequestID)
			if gotHeader != ctxID {
				t.Errorf("response id = %q, context id = %q, want equal", gotHeader, ctxID)
			}

			if tc.keep {
				if gotHeader != tc.incoming {
					t.Errorf("rec.Header().Get(%q) = %q, want: %q", web.HeaderRequestID, gotHeader, tc.incoming)
				}
				return
			}

			if _, err := uuid.Parse(gotHeader); err != nil {
				t.Errorf("uuid.Parse(%q) = %v, want a generated uuid", gotHeader, err)
			}
		})
	}
}
