package module

import (
	"backr/internal/services/sightings/domain"
)

// Ports exposes sighting capabilities for cross module wiring
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}
