package module

import (
	"backr/internal/services/discovery/domain"
)

// Ports exposes discovery capabilities for cross module wiring
type Ports struct {
	Runner domain.RunnerPort
}
