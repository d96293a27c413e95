// Package service contains offer workflows
package service

import (
	"context"
	"strings"

	"backr/internal/modkit/repokit"
	perr "backr/internal/platform/errors"
	"backr/internal/services/offers/domain"
	"backr/internal/services/offers/repo"
)

// Service bundles the offer ports
type Service interface {
	domain.WriterPort
	domain.QueryPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
}

// New creates a new offers service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("offers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("offers.Service requires a non nil Storage binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Upsert validates and stores a discovered code
func (s *Svc) Upsert(ctx context.Context, in domain.UpsertInput) (domain.UpsertResult, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if in.CreatorID == "" {
		return domain.UpsertResult{}, perr.InvalidArgf("creator id is required")
	}
	if in.Code == "" {
		return domain.UpsertResult{}, perr.WithField(perr.InvalidArgf("code is required"), "code")
	}
	return s.Repo.Upsert(ctx, in)
}

// Attribute sets the brand on an unattributed offer
func (s *Svc) Attribute(ctx context.Context, offerID, brandID string) error {
	if offerID == "" || brandID == "" {
		return perr.InvalidArgf("offer id and brand id are required")
	}
	return s.Repo.Attribute(ctx, offerID, brandID)
}

// List returns offers newest-first with keyset pagination
func (s *Svc) List(
	ctx context.Context,
	f domain.Filters,
	after domain.AfterKey,
	limit int,
) ([]domain.Offer, domain.AfterKey, error) {
	return s.Repo.List(ctx, f, after, limit)
}

// Get returns one offer by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Offer, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Offer{}, perr.InvalidArgf("offer id is required")
	}
	return s.Repo.Get(ctx, id)
}
