// Package domain holds creator types and ports
package domain

import "time"

// Creator is a content creator resolved from a platform channel
type Creator struct {
	ID        string
	Platform  string
	ChannelID string
	Name      string
	RefCode   string
	CreatedAt time.Time
}
