package module

import (
	"backr/internal/services/creators/domain"
)

// Ports exposes creator capabilities for cross module wiring
type Ports struct {
	Ensurer domain.EnsurePort
	Query   domain.QueryPort
}
