package domain

import "context"

// EnsurePort resolves a creator row from platform identity, creating it on
// first sight
type EnsurePort interface {
	Ensure(ctx context.Context, platform, channelID, name string) (Creator, error)
}

// QueryPort exposes creator lookups
type QueryPort interface {
	GetByChannel(ctx context.Context, platform, channelID string) (Creator, error)
	Get(ctx context.Context, id string) (Creator, error)
	List(ctx context.Context, limit int) ([]Creator, error)
}
