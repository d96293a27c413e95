// Package domain holds sighting types and ports
package domain

import "time"

// Sighting is one append-only extraction event. Offers are the curated
// state; sightings are the raw analytical stream behind them
type Sighting struct {
	VideoID       string
	ChannelID     string
	Code          string
	Pattern       string // which extraction pattern fired
	ProbableBrand string
	BrandID       string // empty when unmatched
	Source        string
	SeenAt        time.Time
}

// CodeCount is one row of the top-codes aggregate
type CodeCount struct {
	Code  string
	Count uint64
}
