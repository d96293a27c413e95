// Package http provides http transport for offers
package http

import (
	stdhttp "net/http"

	"backr/internal/modkit/httpkit"
	"backr/internal/services/api/offers/domain"
	offersdom "backr/internal/services/offers/domain"
)

// Register mounts offer endpoints on the given router
func Register(r httpkit.Router, q offersdom.QueryPort) {
	h := &handlers{q: q}

	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ q offersdom.QueryPort }

// swagger:route POST /offers/search Offers offersSearch
// @Summary Search offers newest-first with keyset pagination
// @Tags Offers
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Filters"
// @Success 200 {array} domain.OfferRow "ok"
// @Router /offers/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	after, err := domain.DecodeCursor(in.Cursor)
	if err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}

	offers, next, err := h.q.List(r.Context(), offersdom.Filters{
		CreatorID: in.CreatorID,
		BrandID:   in.BrandID,
		Code:      in.Code,
	}, after, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.OfferRow, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, domain.FromOffer(o))
	}
	return httpkit.List(rows, len(rows), limit, domain.EncodeCursor(next)), nil
}

// swagger:route GET /offers/{id} Offers offersGet
// @Summary Get one offer by id
// @Tags Offers
// @Produce json
// @Param id path string true "Offer id"
// @Success 200 type domain.OfferRow ok
// @Router /offers/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	o, err := h.q.Get(r.Context(), httpkit.Param(r, "id"))
	if err != nil {
		return nil, err
	}
	return domain.FromOffer(o), nil
}
