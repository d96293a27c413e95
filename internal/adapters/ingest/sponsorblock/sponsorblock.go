// Package sponsorblock queries the SponsorBlock API for sponsor segments.
// Lookups go through the privacy-preserving hash-prefix endpoint so the
// server never learns which video we are asking about
package sponsorblock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "backr/internal/platform/errors"
)

// Config configures the SponsorBlock client
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client queries sponsor segments
type Client struct {
	hc   *http.Client
	base string
	ua   string
}

// New constructs a Client with sane defaults
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sponsor.ajay.app"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		hc:   &http.Client{Timeout: cfg.Timeout},
		base: cfg.BaseURL,
		ua:   cfg.UserAgent,
	}
}

// Segment is one labeled region of a video
type Segment struct {
	Category string     `json:"category"`
	Span     [2]float64 `json:"segment"`
	UUID     string     `json:"UUID"`
}

type videoEntry struct {
	VideoID  string    `json:"videoID"`
	Segments []Segment `json:"segments"`
}

// HashPrefix returns the first 4 hex chars of sha256(videoID), the key the
// prefix endpoint shards on
func HashPrefix(videoID string) string {
	sum := sha256.Sum256([]byte(videoID))
	return hex.EncodeToString(sum[:])[:4]
}

// Segments returns the sponsor segments recorded for a video. A video with
// no submissions returns an empty slice, not an error
func (c *Client) Segments(ctx context.Context, videoID string) ([]Segment, error) {
	u := c.base + "/api/skipSegments/" + HashPrefix(videoID) + "?category=sponsor&category=selfpromo"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUpstream, "sponsorblock fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusNoContent:
		return nil, nil
	default:
		return nil, perr.Upstreamf("sponsorblock fetch %s: status %d", videoID, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUpstream, "sponsorblock read")
	}

	var entries []videoEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUpstream, "sponsorblock decode")
	}

	// the prefix endpoint returns every video sharing the prefix
	for _, e := range entries {
		if e.VideoID == videoID {
			return e.Segments, nil
		}
	}
	return nil, nil
}

// Sponsored reports whether any sponsor segment exists for the video
func (c *Client) Sponsored(ctx context.Context, videoID string) (bool, error) {
	segs, err := c.Segments(ctx, videoID)
	if err != nil {
		return false, err
	}
	return len(segs) > 0, nil
}
