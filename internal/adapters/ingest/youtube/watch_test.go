package youtube

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const watchHTML = `<!DOCTYPE html>
<html><head>
<meta name="title" content="My Gymshark Haul">
<meta name="description" content="Use code ALEX15 at gymshark.com">
<meta itemprop="channelId" content="UCabc123def456ghi789jkl0">
<span itemprop="author">
  <link itemprop="url" href="http://www.youtube.com/channel/UCabc123def456ghi789jkl0">
  <link itemprop="name" content="Alex Fitness">
</span>
</head><body></body></html>`

func TestParseWatch(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(watchHTML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v := parseWatch(doc)
	if v.Title != "My Gymshark Haul" {
		t.Fatalf("title = %q", v.Title)
	}
	if v.Description != "Use code ALEX15 at gymshark.com" {
		t.Fatalf("description = %q", v.Description)
	}
	if v.ChannelID != "UCabc123def456ghi789jkl0" {
		t.Fatalf("channel id = %q", v.ChannelID)
	}
	if v.ChannelName != "Alex Fitness" {
		t.Fatalf("channel name = %q", v.ChannelName)
	}
}

func TestExtractVideoIDs(t *testing.T) {
	raw := []byte(`{"videoId":"dQw4w9WgXcQ"} {"videoId":"dQw4w9WgXcQ"} {"videoId":"abcDEF12345"}`)
	ids := extractVideoIDs(raw, 10)
	if len(ids) != 2 || ids[0] != "dQw4w9WgXcQ" || ids[1] != "abcDEF12345" {
		t.Fatalf("ids = %v", ids)
	}
	if got := extractVideoIDs(raw, 1); len(got) != 1 {
		t.Fatalf("max not honored: %v", got)
	}
}
