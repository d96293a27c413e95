package raw

import "testing"

func TestGet_PrefixAndDefault(t *testing.T) {
	t.Setenv("BACKR_TEST_NAME", " alpha ")
	c := New().Prefix("BACKR_TEST_")
	if got := c.Get("NAME", "x"); got != "alpha" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("BACKR_TEST_ON", "yes")
	t.Setenv("BACKR_TEST_OFF", "nope")
	c := New().Prefix("BACKR_TEST_")
	if !c.GetBool("ON", false) {
		t.Fatalf("yes should parse true")
	}
	if c.GetBool("OFF", false) {
		t.Fatalf("nope should parse false")
	}
	if !c.GetBool("ABSENT", true) {
		t.Fatalf("absent should fall back")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("BACKR_TEST_N", "42")
	t.Setenv("BACKR_TEST_BAD", "4x2")
	c := New().Prefix("BACKR_TEST_")
	if got := c.GetInt("N", 7); got != 42 {
		t.Fatalf("GetInt = %d", got)
	}
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("invalid int should fall back, got %d", got)
	}
}
