package store

import (
	"context"
	"testing"
)

func TestOpen_NoBackends(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("disabled backends should stay nil")
	}
}

func TestOpen_CHWithoutDSNStaysDisabled(t *testing.T) {
	s, err := Open(context.Background(), Config{
		CH: CHConfig{Enabled: true, ClientName: "backr", ClientTag: "test"},
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.CH != nil {
		t.Fatalf("CH without a DSN should stay disabled")
	}
}
