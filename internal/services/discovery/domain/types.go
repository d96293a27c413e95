// Package domain holds discovery run types and ports
package domain

// Strategy selects how a run finds candidate videos
type Strategy string

const (
	// StrategySearch scans search results for a query
	StrategySearch Strategy = "search"
	// StrategySponsored scans search results, keeping only videos with
	// known sponsor segments
	StrategySponsored Strategy = "sponsored"
	// StrategyChannel scans a channel's latest uploads
	StrategyChannel Strategy = "channel"
)

// VideoMeta is the hydrated metadata of one candidate video
type VideoMeta struct {
	ID          string
	Title       string
	Description string
	ChannelID   string
	ChannelName string
}

// RunInput describes one discovery run
type RunInput struct {
	Strategy  Strategy
	Query     string // search strategy
	ChannelID string // channel strategy
	Max       int    // cap on videos scanned, 0 means service default
}

// Stats summarizes what a run did. Counters are best-effort under
// skip-and-continue: a failed video increments Skipped and nothing else
type Stats struct {
	VideosScanned int
	CodesFound    int
	OffersCreated int
	OffersUpdated int
	BrandsMatched int
	Sponsored     int
	Skipped       int
}
