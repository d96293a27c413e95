// Package repo provides postgres access for creators
package repo

import (
	"context"

	"backr/internal/modkit/repokit"
	perr "backr/internal/platform/errors"
	"backr/internal/services/creators/domain"

	"github.com/google/uuid"
)

// Storage defines the creators repository
type Storage interface {
	Upsert(ctx context.Context, platform, channelID, name, refCode string) (domain.Creator, error)
	GetByChannel(ctx context.Context, platform, channelID string) (domain.Creator, error)
	FindByName(ctx context.Context, platform, name string) (domain.Creator, error)
	Get(ctx context.Context, id string) (domain.Creator, error)
	List(ctx context.Context, limit int) ([]domain.Creator, error)
}

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

const creatorCols = `id::text, platform, channel_id, name, ref_code, created_at`

func scanCreator(row repokit.Row) (domain.Creator, error) {
	var c domain.Creator
	err := row.Scan(&c.ID, &c.Platform, &c.ChannelID, &c.Name, &c.RefCode, &c.CreatedAt)
	return c, err
}

// Upsert inserts a creator keyed by (platform, channel_id). Re-discovery
// refreshes the display name but keeps the original ref code
func (s *pg) Upsert(ctx context.Context, platform, channelID, name, refCode string) (domain.Creator, error) {
	const sql = `
INSERT INTO creators (id, platform, channel_id, name, ref_code)
VALUES ($1::uuid, $2, $3, $4, $5)
ON CONFLICT (platform, channel_id) DO UPDATE SET name = EXCLUDED.name
RETURNING ` + creatorCols
	c, err := scanCreator(s.q.QueryRow(ctx, sql, uuid.NewString(), platform, channelID, name, refCode))
	if err != nil {
		return domain.Creator{}, perr.FromPostgres(err, "creator upsert")
	}
	return c, nil
}

func (s *pg) GetByChannel(ctx context.Context, platform, channelID string) (domain.Creator, error) {
	const sql = `SELECT ` + creatorCols + ` FROM creators WHERE platform = $1 AND channel_id = $2`
	c, err := scanCreator(s.q.QueryRow(ctx, sql, platform, channelID))
	if err != nil {
		if perr.IsNoRows(err) {
			return domain.Creator{}, perr.NotFoundf("creator %s/%s not found", platform, channelID)
		}
		return domain.Creator{}, perr.FromPostgres(err, "creator get by channel")
	}
	return c, nil
}

// FindByName matches a creator by display name when no channel id is
// available. Case-insensitive exact match, newest row wins
func (s *pg) FindByName(ctx context.Context, platform, name string) (domain.Creator, error) {
	const sql = `
SELECT ` + creatorCols + ` FROM creators
WHERE platform = $1 AND lower(name) = lower($2)
ORDER BY created_at DESC
LIMIT 1`
	c, err := scanCreator(s.q.QueryRow(ctx, sql, platform, name))
	if err != nil {
		if perr.IsNoRows(err) {
			return domain.Creator{}, perr.NotFoundf("creator named %q not found on %s", name, platform)
		}
		return domain.Creator{}, perr.FromPostgres(err, "creator find by name")
	}
	return c, nil
}

func (s *pg) Get(ctx context.Context, id string) (domain.Creator, error) {
	const sql = `SELECT ` + creatorCols + ` FROM creators WHERE id = $1::uuid`
	c, err := scanCreator(s.q.QueryRow(ctx, sql, id))
	if err != nil {
		if perr.IsNoRows(err) {
			return domain.Creator{}, perr.NotFoundf("creator %s not found", id)
		}
		return domain.Creator{}, perr.FromPostgres(err, "creator get")
	}
	return c, nil
}

func (s *pg) List(ctx context.Context, limit int) ([]domain.Creator, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `SELECT ` + creatorCols + ` FROM creators ORDER BY created_at DESC, id LIMIT $1`
	rows, err := s.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "creators list")
	}
	defer rows.Close()

	var out []domain.Creator
	for rows.Next() {
		c, err := scanCreator(rows)
		if err != nil {
			return nil, perr.FromPostgres(err, "creators list scan")
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
