// Package transcript fetches caption tracks from the public timedtext API
package transcript

import (
	"context"
	"encoding/xml"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "backr/internal/platform/errors"
)

// ErrNoTranscript marks videos without an english caption track
var ErrNoTranscript = perr.NotFoundf("no transcript available")

// Config configures the transcript client
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Lang      string
}

// Client fetches caption tracks
type Client struct {
	hc   *http.Client
	base string
	ua   string
	lang string
}

// New constructs a Client with sane defaults
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.youtube.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	return &Client{
		hc:   &http.Client{Timeout: cfg.Timeout},
		base: cfg.BaseURL,
		ua:   cfg.UserAgent,
		lang: cfg.Lang,
	}
}

// timedtext wire format

type track struct {
	XMLName xml.Name  `xml:"transcript"`
	Texts   []segment `xml:"text"`
}

type segment struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

// Fetch returns the full transcript text of a video, segments joined with
// single spaces. An empty track maps to ErrNoTranscript
func (c *Client) Fetch(ctx context.Context, videoID string) (string, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", c.lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/timedtext?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "timedtext fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", perr.Upstreamf("timedtext fetch %s: status %d", videoID, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "timedtext read")
	}
	return Parse(raw)
}

// Parse decodes a timedtext XML document into plain text
func Parse(raw []byte) (string, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return "", ErrNoTranscript
	}

	var tr track
	if err := xml.Unmarshal(raw, &tr); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "timedtext parse")
	}
	if len(tr.Texts) == 0 {
		return "", ErrNoTranscript
	}

	parts := make([]string, 0, len(tr.Texts))
	for _, s := range tr.Texts {
		// bodies are double-escaped on the wire (&amp;#39;)
		t := strings.TrimSpace(html.UnescapeString(html.UnescapeString(s.Body)))
		if t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoTranscript
	}
	return strings.Join(parts, " "), nil
}
