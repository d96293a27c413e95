// Package http provides http transport for brands
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"backr/internal/modkit/httpkit"
	brandsdom "backr/internal/services/brands/domain"
	sightingsdom "backr/internal/services/sightings/domain"
)

// BrandRow is one brand in API shape
// swagger:model
type BrandRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DomainPattern string `json:"domain_pattern"`
	CreatedAt     string `json:"created_at"`
}

func fromBrand(b brandsdom.Brand) BrandRow {
	return BrandRow{
		ID:            b.ID,
		Name:          b.Name,
		DomainPattern: b.DomainPattern,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// CodeCountRow is one row of the top-codes aggregate
// swagger:model
type CodeCountRow struct {
	Code  string `json:"code"`
	Count uint64 `json:"count"`
}

// Register mounts brand endpoints on the given router. The sightings query
// port is optional; without it top-codes answers 404
func Register(r httpkit.Router, catalog brandsdom.CatalogPort, sightings sightingsdom.QueryPort) {
	h := &handlers{catalog: catalog, sightings: sightings}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/top-codes", h.topCodes)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct {
	catalog   brandsdom.CatalogPort
	sightings sightingsdom.QueryPort
}

// swagger:route GET /brands Brands brandsList
// @Summary List the brand catalog in creation order
// @Tags Brands
// @Produce json
// @Success 200 {array} BrandRow "ok"
// @Router /brands [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	bs, err := h.catalog.Catalog(r.Context())
	if err != nil {
		return nil, err
	}
	rows := make([]BrandRow, 0, len(bs))
	for _, b := range bs {
		rows = append(rows, fromBrand(b))
	}
	return rows, nil
}

// swagger:route GET /brands/{id} Brands brandsGet
// @Summary Get one brand by id
// @Tags Brands
// @Produce json
// @Param id path string true "Brand id"
// @Success 200 type BrandRow ok
// @Router /brands/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	b, err := h.catalog.Get(r.Context(), httpkit.Param(r, "id"))
	if err != nil {
		return nil, err
	}
	return fromBrand(b), nil
}

// swagger:route GET /brands/top-codes Brands brandsTopCodes
// @Summary Most-sighted codes across the analytical stream
// @Tags Brands
// @Produce json
// @Param limit query int false "Max rows, default 20"
// @Success 200 {array} CodeCountRow "ok"
// @Router /brands/top-codes [get]
func (h *handlers) topCodes(r *stdhttp.Request) (any, error) {
	if h.sightings == nil {
		return nil, httpkit.NotFound("sighting analytics not enabled")
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	counts, err := h.sightings.TopCodes(r.Context(), limit)
	if err != nil {
		return nil, err
	}
	rows := make([]CodeCountRow, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, CodeCountRow{Code: c.Code, Count: c.Count})
	}
	return rows, nil
}
