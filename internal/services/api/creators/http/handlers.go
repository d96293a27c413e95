// Package http provides http transport for creators
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"backr/internal/modkit/httpkit"
	creatorsdom "backr/internal/services/creators/domain"
)

// CreatorRow is one creator in API shape
// swagger:model
type CreatorRow struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	ChannelID string `json:"channel_id"`
	Name      string `json:"name"`
	RefCode   string `json:"ref_code"`
	CreatedAt string `json:"created_at"`
}

func fromCreator(c creatorsdom.Creator) CreatorRow {
	return CreatorRow{
		ID:        c.ID,
		Platform:  c.Platform,
		ChannelID: c.ChannelID,
		Name:      c.Name,
		RefCode:   c.RefCode,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Register mounts creator endpoints on the given router
func Register(r httpkit.Router, q creatorsdom.QueryPort) {
	h := &handlers{q: q}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ q creatorsdom.QueryPort }

// swagger:route GET /creators Creators creatorsList
// @Summary List creators
// @Tags Creators
// @Produce json
// @Param limit query int false "Max rows, default 100"
// @Success 200 {array} CreatorRow "ok"
// @Router /creators [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	cs, err := h.q.List(r.Context(), limit)
	if err != nil {
		return nil, err
	}
	rows := make([]CreatorRow, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, fromCreator(c))
	}
	return rows, nil
}

// swagger:route GET /creators/{id} Creators creatorsGet
// @Summary Get one creator by id
// @Tags Creators
// @Produce json
// @Param id path string true "Creator id"
// @Success 200 type CreatorRow ok
// @Router /creators/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	c, err := h.q.Get(r.Context(), httpkit.Param(r, "id"))
	if err != nil {
		return nil, err
	}
	return fromCreator(c), nil
}
