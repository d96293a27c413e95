package transcript

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const trackXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.1">use code ALEX15</text>
  <text start="2.1" dur="3.0">at gymshark.com for 15% off</text>
  <text start="5.1" dur="1.0">it&amp;#39;s a great deal</text>
</transcript>`

func TestParse(t *testing.T) {
	got, err := Parse([]byte(trackXML))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	want := "use code ALEX15 at gymshark.com for 15% off it's a great deal"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("want ErrNoTranscript, got %v", err)
	}
	if _, err := Parse([]byte("<transcript></transcript>")); !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("want ErrNoTranscript, got %v", err)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/timedtext" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("v") != "dQw4w9WgXcQ" || r.URL.Query().Get("lang") != "en" {
			t.Fatalf("query = %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(trackXML))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	got, err := c.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if got == "" {
		t.Fatalf("empty transcript")
	}
}
