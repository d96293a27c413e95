package youtube

import (
	"context"
	"strings"

	perr "backr/internal/platform/errors"

	"github.com/PuerkitoBio/goquery"
)

// Video fetches one watch page and extracts its public metadata
func (c *Client) Video(ctx context.Context, id string) (Video, error) {
	doc, _, err := c.get(ctx, "/watch?v="+id)
	if err != nil {
		return Video{}, err
	}
	v := parseWatch(doc)
	v.ID = id
	if v.Title == "" {
		return Video{}, perr.Upstreamf("watch page for %s had no metadata", id)
	}
	return v, nil
}

// parseWatch pulls metadata from the head of a watch page. The watch page
// carries schema.org microdata that survives markup churn better than the
// rendered DOM
func parseWatch(doc *goquery.Document) Video {
	var v Video

	v.Title = attrOr(doc, `meta[name="title"]`, "content")
	if v.Title == "" {
		v.Title = attrOr(doc, `meta[property="og:title"]`, "content")
	}

	v.Description = attrOr(doc, `meta[name="description"]`, "content")
	if v.Description == "" {
		v.Description = attrOr(doc, `meta[property="og:description"]`, "content")
	}

	v.ChannelID = attrOr(doc, `meta[itemprop="channelId"]`, "content")
	if v.ChannelID == "" {
		// fall back to the canonical channel link
		if href, ok := doc.Find(`span[itemprop="author"] link[itemprop="url"]`).Attr("href"); ok {
			if i := strings.LastIndex(href, "/channel/"); i >= 0 {
				v.ChannelID = href[i+len("/channel/"):]
			}
		}
	}

	v.ChannelName = attrOr(doc, `span[itemprop="author"] link[itemprop="name"]`, "content")

	return v
}

func attrOr(doc *goquery.Document, selector, attr string) string {
	if val, ok := doc.Find(selector).First().Attr(attr); ok {
		return strings.TrimSpace(val)
	}
	return ""
}
