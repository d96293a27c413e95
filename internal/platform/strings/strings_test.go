package strings

import (
	"testing"

	"backr/internal/platform/testkit"
)

func TestMustPrefix(t *testing.T) {
	if got := MustPrefix(" offers/ "); got != "/offers" {
		t.Fatalf("MustPrefix = %q", got)
	}
	testkit.MustPanic(t, func() { MustPrefix("  ") })
}

func TestMustString(t *testing.T) {
	if got := MustString("x", "name"); got != "x" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { MustString(" ", "name") })
}

func TestSQLNull(t *testing.T) {
	if v := SQLNull(""); v != nil {
		t.Fatalf("blank should be nil, got %v", v)
	}
	if v := SQLNull("abc"); v != "abc" {
		t.Fatalf("got %v", v)
	}
}
