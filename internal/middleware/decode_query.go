package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/fundlist/internal/pkg/message"
	"github.com/ferdiebergado/fundlist/internal/pkg/web"
	"github.com/go-playground/form/v4"
)

// Normalizer is implemented by params that clean themselves up after decoding.
type Normalizer interface {
	Normalize()
}

// DecodeQuery decodes the query string into a T and stores it in the request
// context. Unknown keys are ignored; values of the wrong type are rejected.
func DecodeQuery[T any](decoder *form.Decoder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Decoding query string...")
			var decoded T
			if err := decoder.Decode(&decoded, r.URL.Query()); err != nil {
				var decodeErrs form.DecodeErrors
				if errors.As(err, &decodeErrs) {
					details := make(map[string]string, len(decodeErrs))
					for field := range decodeErrs {
						details[field] = fmt.Sprintf("%s is invalid", field)
					}
					web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, details)
					return
				}

				web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
				return
			}

			if n, ok := any(&decoded).(Normalizer); ok {
				n.Normalize()
			}

			ctx := web.NewContextWithParams(r.Context(), decoded)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
