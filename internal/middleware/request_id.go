package middleware

import (
	"net/http"

	"github.com/ferdiebergado/fundlist/internal/pkg/web"
	"github.com/google/uuid"
)

const maxRequestIDLen = 128

// RequestID propagates the caller's X-Request-ID, or assigns a new UUID, and
// echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(web.HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		w.Header().Set(web.HeaderRequestID, id)
		ctx := web.NewContextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
