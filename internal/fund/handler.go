package fund

import (
	"context"
	"errors"
	"net/http"

	errx "github.com/ferdiebergado/fundlist/internal/pkg/error"
	"github.com/ferdiebergado/fundlist/internal/pkg/message"
	"github.com/ferdiebergado/fundlist/internal/pkg/web"
	"github.com/ferdiebergado/fundlist/internal/query"
)

type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ListResponse struct {
	Funds      []Fund         `json:"funds"`
	Pagination Pagination     `json:"pagination"`
	Filters    AppliedFilters `json:"filters"`
	Facets     *Facets        `json:"facets,omitempty"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[ListParams](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	res, err := h.svc.List(r.Context(), params)
	if err != nil {
		switch {
		case errx.IsContextError(err):
			web.Fail(w, http.StatusServiceUnavailable, err, message.Unavailable, nil)
		case errors.Is(err, query.ErrUnknownField), errors.Is(err, query.ErrInvalidPattern):
			web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		default:
			web.Fail(w, http.StatusInternalServerError, err, message.ServerError, nil)
		}
		return
	}

	data := &ListResponse{
		Funds:      res.Funds,
		Pagination: res.Pagination,
		Filters:    res.Filters,
		Facets:     res.Facets,
	}
	web.OK(w, http.StatusOK, nil, data)
}

// Health reports whether the fund store is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		web.Fail(w, http.StatusServiceUnavailable, err, message.Unavailable, nil)
		return
	}

	msg := message.Healthy
	web.OK[struct{}](w, http.StatusOK, &msg, nil)
}
