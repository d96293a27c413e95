// Package repo provides postgres access for brands
package repo

import (
	"context"

	"backr/internal/modkit/repokit"
	perr "backr/internal/platform/errors"
	"backr/internal/services/brands/domain"

	"github.com/google/uuid"
)

// Storage defines the brands repository
type Storage interface {
	Catalog(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, id string) (domain.Brand, error)
	Upsert(ctx context.Context, name, domainPattern string) (domain.Brand, error)
}

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Catalog returns every brand ordered by creation time then id, which keeps
// matcher tie-breaks deterministic
func (s *pg) Catalog(ctx context.Context) ([]domain.Brand, error) {
	const sql = `
SELECT id::text, name, domain_pattern, created_at
FROM brands
ORDER BY created_at, id
`
	rows, err := s.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "brands catalog")
	}
	defer rows.Close()

	var out []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.DomainPattern, &b.CreatedAt); err != nil {
			return nil, perr.FromPostgres(err, "brands catalog scan")
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *pg) Get(ctx context.Context, id string) (domain.Brand, error) {
	const sql = `
SELECT id::text, name, domain_pattern, created_at
FROM brands
WHERE id = $1::uuid
`
	var b domain.Brand
	err := s.q.QueryRow(ctx, sql, id).Scan(&b.ID, &b.Name, &b.DomainPattern, &b.CreatedAt)
	if err != nil {
		if perr.IsNoRows(err) {
			return domain.Brand{}, perr.NotFoundf("brand %s not found", id)
		}
		return domain.Brand{}, perr.FromPostgres(err, "brand get")
	}
	return b, nil
}

// Upsert inserts a brand keyed by domain pattern. A second discovery of the
// same domain returns the existing row untouched
func (s *pg) Upsert(ctx context.Context, name, domainPattern string) (domain.Brand, error) {
	const sql = `
INSERT INTO brands (id, name, domain_pattern)
VALUES ($1::uuid, $2, $3)
ON CONFLICT (domain_pattern) DO UPDATE SET domain_pattern = brands.domain_pattern
RETURNING id::text, name, domain_pattern, created_at
`
	var b domain.Brand
	err := s.q.QueryRow(ctx, sql, uuid.NewString(), name, domainPattern).
		Scan(&b.ID, &b.Name, &b.DomainPattern, &b.CreatedAt)
	if err != nil {
		return domain.Brand{}, perr.FromPostgres(err, "brand upsert")
	}
	return b, nil
}
