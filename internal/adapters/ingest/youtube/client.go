// Package youtube scrapes public video metadata without an API key.
// It is deliberately polite: one request at a time with a fixed delay
package youtube

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	perr "backr/internal/platform/errors"

	"github.com/PuerkitoBio/goquery"
)

// Config configures the scraper client
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Delay     time.Duration
}

// Client fetches and parses public pages
type Client struct {
	hc   *http.Client
	base string
	ua   string

	delay time.Duration
	mu    sync.Mutex
	last  time.Time
}

// New constructs a Client with sane defaults
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.youtube.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 500 * time.Millisecond
	}
	return &Client{
		hc:    &http.Client{Timeout: cfg.Timeout},
		base:  cfg.BaseURL,
		ua:    cfg.UserAgent,
		delay: cfg.Delay,
	}
}

// get fetches a page and returns both the parsed document and raw body.
// The raw body is needed for script-embedded JSON the DOM never sees
func (c *Client) get(ctx context.Context, path string) (*goquery.Document, []byte, error) {
	c.throttle(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("Accept-Language", "en")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, nil, perr.Wrap(err, perr.ErrorCodeUpstream, "youtube fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, perr.Upstreamf("youtube fetch %s: status %d", path, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, nil, perr.Wrap(err, perr.ErrorCodeUpstream, "youtube read body")
	}
	doc, err := goquery.NewDocumentFromReader(bytesReader(raw))
	if err != nil {
		return nil, nil, perr.Wrap(err, perr.ErrorCodeUpstream, "youtube parse html")
	}
	return doc, raw, nil
}

func (c *Client) throttle(ctx context.Context) {
	c.mu.Lock()
	wait := c.delay - time.Since(c.last)
	c.last = time.Now().Add(wait)
	c.mu.Unlock()

	if wait <= 0 {
		return
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
