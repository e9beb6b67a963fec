package middleware

import (
	"net/http"
	"slices"
)

const (
	HeaderAllowOrigin   = "Access-Control-Allow-Origin"
	HeaderAllowMethods  = "Access-Control-Allow-Methods"
	HeaderAllowHeaders  = "Access-Control-Allow-Headers"
	HeaderExposeHeaders = "Access-Control-Expose-Headers"
	HeaderMaxAge        = "Access-Control-Max-Age"

	AllowedMethods = "GET, OPTIONS"
	AllowedHeaders = "Content-Type, X-Request-ID"
	ExposedHeaders = "X-Request-ID"

	wildcard = "*"
)

// CORS allows cross-origin reads from the given origins. A "*" entry allows any origin.
// Requests from other origins get no CORS headers.
func CORS(allowedOrigins ...string) func(http.Handler) http.Handler {
	anyOrigin := slices.Contains(allowedOrigins, wildcard)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := origin != "" && (anyOrigin || slices.Contains(allowedOrigins, origin))

			if allowed {
				h := w.Header()
				if anyOrigin {
					h.Set(HeaderAllowOrigin, wildcard)
				} else {
					h.Set(HeaderAllowOrigin, origin)
					h.Add("Vary", "Origin")
				}
				h.Set(HeaderAllowMethods, AllowedMethods)
				h.Set(HeaderAllowHeaders, AllowedHeaders)
				h.Set(HeaderExposeHeaders, ExposedHeaders)
				h.Set(HeaderMaxAge, "600")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
