package middleware

import (
	"net/http"

	"github.com/ferdiebergado/fundlist/internal/pkg/message"
	"github.com/ferdiebergado/fundlist/internal/pkg/web"
)

// ContextGuard rejects requests whose context is already done.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.Fail(w, http.StatusServiceUnavailable, err, message.Unavailable, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
