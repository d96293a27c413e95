package codes

import (
	"reflect"
	"testing"
)

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

func TestExtract_KeywordPattern(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Use my code: ALEX15 for 15% off", "ALEX15"},
		{"Promo code SUMMER2025", "SUMMER2025"},
		{"discount code: SAVE30", "SAVE30"},
		{"coupon GYM50 at checkout", "GYM50"},
	}
	for _, tc := range cases {
		got := Extract(tc.text)
		if !contains(got, tc.want) {
			t.Fatalf("Extract(%q) = %v, missing %q", tc.text, got, tc.want)
		}
	}
}

func TestExtract_VerbPattern(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Use code MKBHD10 for 10% off", "MKBHD10"},
		{"enter BEAST20 at checkout", "BEAST20"},
		{"try my code GYMSHARK15", "GYMSHARK15"},
		{"apply code ALEX20", "ALEX20"},
	}
	for _, tc := range cases {
		got := Extract(tc.text)
		if !contains(got, tc.want) {
			t.Fatalf("Extract(%q) = %v, missing %q", tc.text, got, tc.want)
		}
	}
}

func TestExtract_SavingsPattern(t *testing.T) {
	if got := Extract("Get 10% off with SARAH10"); !contains(got, "SARAH10") {
		t.Fatalf("missing SARAH10: %v", got)
	}
	if got := Extract("50% off using code FLAT50"); !contains(got, "FLAT50") {
		t.Fatalf("missing FLAT50: %v", got)
	}
}

func TestExtract_BarePattern(t *testing.T) {
	got := Extract("Check out the deal: NIKE20 is great")
	if !contains(got, "NIKE20") {
		t.Fatalf("missing NIKE20: %v", got)
	}

	// Pure-letter shouting must not surface via the bare pattern
	got2 := Extract("AMAZING deal today on PRODUCT items")
	if contains(got2, "AMAZING") || contains(got2, "PRODUCT") {
		t.Fatalf("pure-letter tokens leaked: %v", got2)
	}

	// Lowercase mentions still surface because the bare pattern scans
	// the uppercased text
	got3 := Extract("my friends all use nike20 these days")
	if !contains(got3, "NIKE20") {
		t.Fatalf("lowercase mention missed: %v", got3)
	}
}

func TestExtract_URLPathPattern(t *testing.T) {
	got := Extract("shop at gymshark.com/GYMSHARK20 today")
	if !contains(got, "GYMSHARK20") {
		t.Fatalf("missing GYMSHARK20: %v", got)
	}

	// Pure-letter path segments have no digits, so only the URL pattern
	// can surface them
	cands := survivors("grab yours at https://ridge.com/RIDGEFAMILY")
	if len(cands) != 1 || cands[0].Norm != "RIDGEFAMILY" {
		t.Fatalf("survivors = %+v", cands)
	}
	if cands[0].Pattern != PatternURLPath {
		t.Fatalf("pattern = %q, want %q", cands[0].Pattern, PatternURLPath)
	}
}

func TestExtract_DenylistRejection(t *testing.T) {
	text := "Visit HTTPS://WWW.example.COM and SUBSCRIBE for more AMAZING content"
	got := Extract(text)
	for _, w := range []string{"HTTPS", "WWW", "COM", "SUBSCRIBE", "AMAZING"} {
		if contains(got, w) {
			t.Fatalf("denylisted token %q leaked: %v", w, got)
		}
	}
}

func TestExtract_NoUppercaseRuns(t *testing.T) {
	got := Extract("just a quiet sentence about nothing in particular")
	if len(got) != 0 {
		t.Fatalf("expected no codes, got %v", got)
	}
}

func TestExtract_DedupKeepsFirstSeenOrder(t *testing.T) {
	text := `Use code ALEX15 for 15% off. Enter "alex15" at checkout. ALEX15 works!`
	got := Extract(text)
	n := 0
	for _, c := range got {
		if c == "ALEX15" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected exactly one ALEX15, got %v", got)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	text := "Thanks to Gymshark! Use code CHRIS20 for 20% off at gymshark.com, or CBUM25 at MyProtein"
	a := Extract(text)
	b := Extract(text)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("extraction not order-stable: %v vs %v", a, b)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestExtract_LengthBounds(t *testing.T) {
	// 3 chars: below minimum even with a keyword anchor
	if got := Extract("use code AB1 now"); contains(got, "AB1") {
		t.Fatalf("3-char code accepted: %v", got)
	}
	// 21 chars: above maximum
	long := "ABCDEFGHIJKLMNOPQRS12"
	if got := Extract("use code " + long); contains(got, long) {
		t.Fatalf("21-char code accepted: %v", got)
	}
}

func TestExtract_ShortPureLetterNeedsBrandPrefix(t *testing.T) {
	// CHRIS is a short pure-letter token with no brand prefix
	if got := Extract("use code CHRIS for 60% off"); contains(got, "CHRIS") {
		t.Fatalf("short pure-letter code accepted: %v", got)
	}
	// CUTS is in the brand prefix table
	if got := Extract("use code CUTS at checkout"); !contains(got, "CUTS") {
		t.Fatalf("brand-prefixed short code rejected: %v", got)
	}
}

func TestExtract_RealWorldDescription(t *testing.T) {
	description := `
Thanks to Gymshark for sponsoring this video!
Use code CHRIS20 for 20% off everything at https://www.gymshark.com

Also check out AG1 - use my link: https://drinkag1.com/chris

Timestamps:
0:00 - Intro
1:30 - Workout starts

Other codes:
- NordVPN: use code CHRIS for 60% off at nordvpn.com/chris
- MyProtein: CBUM25 for 25% off
`
	got := Extract(description)
	if !contains(got, "CHRIS20") {
		t.Fatalf("missing CHRIS20: %v", got)
	}
	if !contains(got, "CBUM25") {
		t.Fatalf("missing CBUM25: %v", got)
	}
}
