package domain

import (
	"testing"
	"time"

	offersdom "backr/internal/services/offers/domain"
)

func TestCursorRoundTrip(t *testing.T) {
	k := offersdom.AfterKey{
		LastSeenAt: time.Date(2026, 8, 30, 12, 0, 0, 123456789, time.UTC),
		ID:         "6f1e8e1a-1111-4222-8333-444455556666",
	}
	tok := EncodeCursor(k)
	if tok == "" {
		t.Fatalf("empty token")
	}
	got, err := DecodeCursor(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.LastSeenAt.Equal(k.LastSeenAt) || got.ID != k.ID {
		t.Fatalf("got %+v want %+v", got, k)
	}
}

func TestCursorEmpty(t *testing.T) {
	if EncodeCursor(offersdom.AfterKey{}) != "" {
		t.Fatalf("empty key should encode empty")
	}
	k, err := DecodeCursor("")
	if err != nil || k.ID != "" {
		t.Fatalf("empty cursor should decode to zero key")
	}
}

func TestCursorMalformed(t *testing.T) {
	for _, tok := range []string{"!!!", "bm9jb2xvbg", "OjEyMw"} {
		if _, err := DecodeCursor(tok); err == nil {
			t.Fatalf("token %q should fail", tok)
		}
	}
}
