package youtube

import (
	"context"
	"net/url"
	"regexp"
)

// reVideoID matches the embedded player JSON on results and channel pages.
// Video ids are always 11 chars of [A-Za-z0-9_-]
var reVideoID = regexp.MustCompile(`"videoId"\s*:\s*"([\w-]{11})"`)

// Search returns video ids for a query, newest result ordering as served.
// Ids are deduplicated preserving first occurrence
func (c *Client) Search(ctx context.Context, query string, max int) ([]string, error) {
	_, raw, err := c.get(ctx, "/results?search_query="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	return extractVideoIDs(raw, max), nil
}

// ChannelVideos returns the latest video ids of a channel uploads page
func (c *Client) ChannelVideos(ctx context.Context, channelID string, max int) ([]string, error) {
	_, raw, err := c.get(ctx, "/channel/"+url.PathEscape(channelID)+"/videos")
	if err != nil {
		return nil, err
	}
	return extractVideoIDs(raw, max), nil
}

func extractVideoIDs(raw []byte, max int) []string {
	if max <= 0 {
		max = 20
	}
	seen := make(map[string]struct{})
	var out []string
	for _, m := range reVideoID.FindAllSubmatch(raw, -1) {
		id := string(m[1])
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if len(out) >= max {
			break
		}
	}
	return out
}
