// Package repo provides clickhouse access for sightings
package repo

import (
	"context"

	perr "backr/internal/platform/errors"
	"backr/internal/platform/store"
	"backr/internal/services/sightings/domain"
)

// table column order matches Insert row construction below
const table = "code_sightings"

// CH implements sightings storage on ClickHouse
type CH struct {
	db store.Clickhouse
}

// NewCH constructs a clickhouse-backed repo
func NewCH(db store.Clickhouse) *CH {
	if db == nil {
		panic("sightings.CH requires a non nil Clickhouse seam")
	}
	return &CH{db: db}
}

// WriteBatch appends sightings in one insert
func (s *CH) WriteBatch(ctx context.Context, xs []domain.Sighting) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, x := range xs {
		rows = append(rows, []any{
			x.VideoID, x.ChannelID, x.Code, x.Pattern,
			x.ProbableBrand, x.BrandID, x.Source, x.SeenAt,
		})
	}
	if err := s.db.Insert(ctx, table, rows); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "sightings write")
	}
	return nil
}

// TopCodes returns the most sighted codes
func (s *CH) TopCodes(ctx context.Context, limit int) ([]domain.CodeCount, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
SELECT code, count() AS n
FROM `+table+`
GROUP BY code
ORDER BY n DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "sightings top codes")
	}
	defer rows.Close()

	var out []domain.CodeCount
	for rows.Next() {
		var c domain.CodeCount
		if err := rows.Scan(&c.Code, &c.Count); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "sightings top codes scan")
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
