package module

import (
	"backr/internal/services/brands/domain"
)

// Ports exposes brand capabilities for cross module wiring
type Ports struct {
	Catalog domain.CatalogPort
	Ensurer domain.EnsurePort
}
