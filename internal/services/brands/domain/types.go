// Package domain holds brand types and ports
package domain

import "time"

// Brand is a known sponsor brand in the catalog
type Brand struct {
	ID            string
	Name          string
	DomainPattern string
	CreatedAt     time.Time
}
