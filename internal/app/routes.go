package app

import (
	"net/http"

	"github.com/ferdiebergado/fundlist/internal/fund"
	"github.com/ferdiebergado/fundlist/internal/middleware"
	"github.com/ferdiebergado/fundlist/internal/platform/router"
	"github.com/ferdiebergado/fundlist/internal/platform/validation"
	"github.com/go-playground/form/v4"
)

var apiPrefixes = []string{"/api", "/api/v1"}

func mountFundRoutes(r router.Router, handler *fund.Handler, validator validation.Validator, decoder *form.Decoder) {
	for _, prefix := range apiPrefixes {
		r.Group(prefix, func(gr router.Router) {
			gr.Get("/funds", handler.List,
				middleware.DecodeQuery[fund.ListParams](decoder),
				middleware.ValidateInput[fund.ListParams](validator))
			gr.Options("/funds", noContent)
		}, middleware.Compress)
	}
}

func mountHealthRoutes(r router.Router, handler *fund.Handler) {
	r.Get("/healthz", handler.Health)
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
