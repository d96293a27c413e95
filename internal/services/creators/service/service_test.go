package service

import (
	"strings"
	"testing"
)

func TestNewRefCode(t *testing.T) {
	got := newRefCode("Alex Fitness!")
	parts := strings.SplitN(got, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("ref code shape: %q", got)
	}
	if parts[0] != "ALEXFITN" {
		t.Fatalf("name part = %q", parts[0])
	}
	if len(parts[1]) != 8 {
		t.Fatalf("suffix length = %d", len(parts[1]))
	}

	if a, b := newRefCode("Same"), newRefCode("Same"); a == b {
		t.Fatalf("ref codes must differ per call: %q", a)
	}
}

func TestNewRefCode_EmptyName(t *testing.T) {
	got := newRefCode("???")
	if !strings.HasPrefix(got, "CREATOR-") {
		t.Fatalf("fallback = %q", got)
	}
}
