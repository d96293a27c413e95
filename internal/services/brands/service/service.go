// Package service contains brand workflows
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"backr/internal/modkit/repokit"
	perr "backr/internal/platform/errors"
	"backr/internal/services/brands/domain"
	"backr/internal/services/brands/repo"
)

// Service bundles the brand catalog ports
type Service interface {
	domain.CatalogPort
	domain.EnsurePort
}

// Svc implements Service with a short-lived catalog cache. Discovery scans
// hit the catalog once per item, so even a small TTL removes most round trips
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner

	ttl      time.Duration
	mu       sync.Mutex
	cached   []domain.Brand
	cachedAt time.Time
}

// New creates a new brands service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("brands.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("brands.Service requires a non nil Storage binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		ttl:    30 * time.Second,
	}
}

// Catalog returns the brand catalog, served from cache within the TTL
func (s *Svc) Catalog(ctx context.Context) ([]domain.Brand, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < s.ttl {
		out := s.cached
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	rows, err := s.Repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = rows
	s.cachedAt = time.Now()
	s.mu.Unlock()
	return rows, nil
}

// Get returns one brand by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Brand, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Brand{}, perr.InvalidArgf("brand id is required")
	}
	return s.Repo.Get(ctx, id)
}

// Ensure upserts a brand by domain pattern and invalidates the cache when a
// row comes back that the cache has not seen
func (s *Svc) Ensure(ctx context.Context, name, domainPattern string) (domain.Brand, error) {
	name = strings.TrimSpace(name)
	domainPattern = strings.ToLower(strings.TrimSpace(domainPattern))
	if name == "" || domainPattern == "" {
		return domain.Brand{}, perr.InvalidArgf("brand name and domain pattern are required")
	}

	b, err := s.Repo.Upsert(ctx, name, domainPattern)
	if err != nil {
		return domain.Brand{}, err
	}

	s.mu.Lock()
	known := false
	for _, c := range s.cached {
		if c.ID == b.ID {
			known = true
			break
		}
	}
	if !known {
		s.cached = nil
	}
	s.mu.Unlock()
	return b, nil
}
