package config

import (
	"testing"
	"time"

	"backr/internal/platform/testkit"
)

func TestMayHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "hello")
	t.Setenv("CFG_TEST_INT", "9")
	t.Setenv("CFG_TEST_BOOL", "true")
	t.Setenv("CFG_TEST_DUR", "250ms")

	c := New().Prefix("CFG_TEST_")
	if got := c.MayString("STR", "x"); got != "hello" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayInt("INT", 1); got != 9 {
		t.Fatalf("MayInt = %d", got)
	}
	if !c.MayBool("BOOL", false) {
		t.Fatalf("MayBool should be true")
	}
	if got := c.MayDuration("DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayInt("ABSENT", 3); got != 3 {
		t.Fatalf("absent MayInt = %d", got)
	}
}

func TestMustString_PanicsWhenMissing(t *testing.T) {
	c := New().Prefix("CFG_TEST_NOPE_")
	testkit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustPort(t *testing.T) {
	t.Setenv("CFG_TEST_PORT", "4000")
	c := New().Prefix("CFG_TEST_")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("CFG_TEST_PORT", "99999")
	testkit.MustPanic(t, func() { _ = c.MustPort("PORT") })
}
