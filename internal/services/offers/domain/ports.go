package domain

import "context"

// WriterPort persists discovered offers
type WriterPort interface {
	// Upsert stores a discovered code idempotently per (creator, code)
	Upsert(ctx context.Context, in UpsertInput) (UpsertResult, error)
	// Attribute sets the brand on an offer that was stored unattributed
	Attribute(ctx context.Context, offerID, brandID string) error
}

// QueryPort exposes offer listings
type QueryPort interface {
	List(ctx context.Context, f Filters, after AfterKey, limit int) ([]Offer, AfterKey, error)
	Get(ctx context.Context, id string) (Offer, error)
}
