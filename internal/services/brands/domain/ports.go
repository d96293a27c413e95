package domain

import "context"

// CatalogPort exposes the read side of the brand catalog
type CatalogPort interface {
	// Catalog returns the full catalog in stable creation order
	Catalog(ctx context.Context) ([]Brand, error)
	// Get returns one brand by id
	Get(ctx context.Context, id string) (Brand, error)
}

// EnsurePort creates brands discovered from web indicators
type EnsurePort interface {
	// Ensure upserts a brand by domain pattern and returns the stored row
	Ensure(ctx context.Context, name, domainPattern string) (Brand, error)
}
