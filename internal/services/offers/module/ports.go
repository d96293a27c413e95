package module

import (
	"backr/internal/services/offers/domain"
)

// Ports exposes offer capabilities for cross module wiring
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}
