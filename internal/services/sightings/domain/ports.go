package domain

import "context"

// WriterPort appends sightings to the analytical store
type WriterPort interface {
	WriteBatch(ctx context.Context, xs []Sighting) error
}

// QueryPort exposes sighting aggregates
type QueryPort interface {
	TopCodes(ctx context.Context, limit int) ([]CodeCount, error)
}
