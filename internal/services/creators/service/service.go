// Package service contains creator workflows
package service

import (
	"context"
	"strings"

	"backr/internal/modkit/repokit"
	perr "backr/internal/platform/errors"
	"backr/internal/services/creators/domain"
	"backr/internal/services/creators/repo"

	"github.com/google/uuid"
)

// Service bundles the creator ports
type Service interface {
	domain.EnsurePort
	domain.QueryPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
}

// New creates a new creators service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("creators.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("creators.Service requires a non nil Storage binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Ensure resolves a creator by platform identity, creating the row with a
// fresh ref code on first sight
func (s *Svc) Ensure(ctx context.Context, platform, channelID, name string) (domain.Creator, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	channelID = strings.TrimSpace(channelID)
	name = strings.TrimSpace(name)
	if platform == "" {
		return domain.Creator{}, perr.InvalidArgf("platform is required")
	}

	// some surfaces only expose a display name; fall back to matching on it
	if channelID == "" {
		if name == "" {
			return domain.Creator{}, perr.InvalidArgf("channel id or name is required")
		}
		return s.Repo.FindByName(ctx, platform, name)
	}

	if name == "" {
		name = channelID
	}
	return s.Repo.Upsert(ctx, platform, channelID, name, newRefCode(name))
}

// GetByChannel returns a creator by platform identity
func (s *Svc) GetByChannel(ctx context.Context, platform, channelID string) (domain.Creator, error) {
	return s.Repo.GetByChannel(ctx, strings.ToLower(strings.TrimSpace(platform)), strings.TrimSpace(channelID))
}

// Get returns a creator by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Creator, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Creator{}, perr.InvalidArgf("creator id is required")
	}
	return s.Repo.Get(ctx, id)
}

// List returns recent creators
func (s *Svc) List(ctx context.Context, limit int) ([]domain.Creator, error) {
	return s.Repo.List(ctx, limit)
}

// newRefCode derives a short referral tag from the creator name plus a
// uuid fragment so two creators with the same name never collide
func newRefCode(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
		if sb.Len() >= 8 {
			break
		}
	}
	tag := sb.String()
	if tag == "" {
		tag = "CREATOR"
	}
	return tag + "-" + strings.ToUpper(uuid.NewString()[:8])
}
