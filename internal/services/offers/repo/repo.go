// Package repo provides postgres access for offers
package repo

import (
	"context"
	"fmt"
	"strings"

	"backr/internal/modkit/repokit"
	perr "backr/internal/platform/errors"
	pstr "backr/internal/platform/strings"
	"backr/internal/services/offers/domain"

	"github.com/google/uuid"
)

// Storage defines the offers repository
type Storage interface {
	Upsert(ctx context.Context, in domain.UpsertInput) (domain.UpsertResult, error)
	Attribute(ctx context.Context, offerID, brandID string) error
	List(ctx context.Context, f domain.Filters, after domain.AfterKey, limit int) ([]domain.Offer, domain.AfterKey, error)
	Get(ctx context.Context, id string) (domain.Offer, error)
}

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Upsert is idempotent per (creator_id, code): a re-sighting refreshes
// last_seen_at and context, and fills the brand when it was unknown before.
// xmax = 0 distinguishes a fresh insert from a conflict update
func (s *pg) Upsert(ctx context.Context, in domain.UpsertInput) (domain.UpsertResult, error) {
	const sql = `
INSERT INTO offers (id, creator_id, brand_id, code, context, source, video_id)
VALUES ($1::uuid, $2::uuid, $3::uuid, $4, $5, $6, $7)
ON CONFLICT (creator_id, code) DO UPDATE SET
	last_seen_at = now(),
	context      = EXCLUDED.context,
	video_id     = EXCLUDED.video_id,
	brand_id     = COALESCE(offers.brand_id, EXCLUDED.brand_id)
RETURNING id::text, creator_id::text, COALESCE(brand_id::text, ''), code, context,
	source, video_id, first_seen_at, last_seen_at, (xmax = 0) AS inserted
`
	var (
		o       domain.Offer
		created bool
	)
	err := s.q.QueryRow(ctx, sql,
		uuid.NewString(), in.CreatorID, pstr.SQLNull(in.BrandID),
		in.Code, in.Context, in.Source, in.VideoID,
	).Scan(
		&o.ID, &o.CreatorID, &o.BrandID, &o.Code, &o.Context,
		&o.Source, &o.VideoID, &o.FirstSeenAt, &o.LastSeenAt, &created,
	)
	if err != nil {
		return domain.UpsertResult{}, perr.FromPostgres(err, "offer upsert")
	}
	return domain.UpsertResult{Offer: o, Created: created}, nil
}

// Attribute fills the brand only when still unset; a second attribution of
// the same offer is a no-op
func (s *pg) Attribute(ctx context.Context, offerID, brandID string) error {
	const sql = `
UPDATE offers SET brand_id = $2::uuid
WHERE id = $1::uuid AND brand_id IS NULL
`
	_, err := s.q.Exec(ctx, sql, offerID, brandID)
	return perr.FromPostgres(err, "offer attribute")
}

func (s *pg) List(
	ctx context.Context,
	f domain.Filters,
	after domain.AfterKey,
	limit int,
) ([]domain.Offer, domain.AfterKey, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
SELECT id::text, creator_id::text, COALESCE(brand_id::text, ''), code, context,
	source, video_id, first_seen_at, last_seen_at
FROM offers
WHERE true
`)
	// keyset only when AfterKey is set (avoid ""::uuid on first page)
	if after.ID != "" {
		sb.WriteString("  AND (last_seen_at, id) < (" + arg(after.LastSeenAt) + ", " + arg(after.ID) + "::uuid)\n")
	}
	if f.CreatorID != "" {
		sb.WriteString("  AND creator_id = " + arg(f.CreatorID) + "::uuid\n")
	}
	if f.BrandID != "" {
		sb.WriteString("  AND brand_id = " + arg(f.BrandID) + "::uuid\n")
	}
	if f.Code != "" {
		sb.WriteString("  AND code = " + arg(strings.ToUpper(f.Code)) + "\n")
	}
	sb.WriteString("ORDER BY last_seen_at DESC, id DESC\nLIMIT " + arg(limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, perr.FromPostgres(err, "offers list")
	}
	defer rows.Close()

	var out []domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(
			&o.ID, &o.CreatorID, &o.BrandID, &o.Code, &o.Context,
			&o.Source, &o.VideoID, &o.FirstSeenAt, &o.LastSeenAt,
		); err != nil {
			return nil, domain.AfterKey{}, perr.FromPostgres(err, "offers list scan")
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.AfterKey{}, err
	}

	var next domain.AfterKey
	if len(out) == limit {
		last := out[len(out)-1]
		next = domain.AfterKey{LastSeenAt: last.LastSeenAt, ID: last.ID}
	}
	return out, next, nil
}

func (s *pg) Get(ctx context.Context, id string) (domain.Offer, error) {
	const sql = `
SELECT id::text, creator_id::text, COALESCE(brand_id::text, ''), code, context,
	source, video_id, first_seen_at, last_seen_at
FROM offers
WHERE id = $1::uuid
`
	var o domain.Offer
	err := s.q.QueryRow(ctx, sql, id).Scan(
		&o.ID, &o.CreatorID, &o.BrandID, &o.Code, &o.Context,
		&o.Source, &o.VideoID, &o.FirstSeenAt, &o.LastSeenAt,
	)
	if err != nil {
		if perr.IsNoRows(err) {
			return domain.Offer{}, perr.NotFoundf("offer %s not found", id)
		}
		return domain.Offer{}, perr.FromPostgres(err, "offer get")
	}
	return o, nil
}
