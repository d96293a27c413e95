// Package domain holds offer types and ports
package domain

import "time"

// Offer is a creator discount code, optionally attributed to a brand
type Offer struct {
	ID          string
	CreatorID   string
	BrandID     string // empty when unattributed
	Code        string
	Context     string
	Source      string // e.g. "youtube:description", "youtube:transcript"
	VideoID     string
	FirstSeenAt time.Time
	LastSeenAt  time.Time
}

// UpsertInput is one discovered code ready for persistence
type UpsertInput struct {
	CreatorID string
	BrandID   string
	Code      string
	Context   string
	Source    string
	VideoID   string
}

// UpsertResult reports what the write did
type UpsertResult struct {
	Offer   Offer
	Created bool
}

// AfterKey is the keyset cursor for offer listings
type AfterKey struct {
	LastSeenAt time.Time
	ID         string
}

// Filters narrows offer listings
type Filters struct {
	CreatorID string
	BrandID   string
	Code      string
}
