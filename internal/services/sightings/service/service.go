// Package service provides the sightings service implementation
package service

import (
	"context"
	"time"

	"backr/internal/services/sightings/domain"
	"backr/internal/services/sightings/repo"
)

// Service implements domain.WriterPort and domain.QueryPort directly against
// the CH repo
type Service struct {
	Storage *repo.CH
}

// New constructs a new sightings service. A nil repo turns the service into
// a no-op sink so deployments without ClickHouse still run
func New(storage *repo.CH) *Service {
	return &Service{Storage: storage}
}

// WriteBatch implements domain.WriterPort, stamping SeenAt when unset
func (s *Service) WriteBatch(ctx context.Context, xs []domain.Sighting) error {
	if s.Storage == nil {
		return nil
	}
	now := time.Now().UTC()
	for i := range xs {
		if xs[i].SeenAt.IsZero() {
			xs[i].SeenAt = now
		}
	}
	return s.Storage.WriteBatch(ctx, xs)
}

// TopCodes implements domain.QueryPort
func (s *Service) TopCodes(ctx context.Context, limit int) ([]domain.CodeCount, error) {
	if s.Storage == nil {
		return nil, nil
	}
	return s.Storage.TopCodes(ctx, limit)
}
