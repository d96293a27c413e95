package brandmatch

import "testing"

func catalog() []Brand {
	return []Brand{
		{ID: "1", Name: "Nike", DomainPattern: "nike.com"},
		{ID: "2", Name: "Adidas", DomainPattern: "adidas.com"},
		{ID: "3", Name: "Gymshark", DomainPattern: "gymshark.com"},
		{ID: "4", Name: "MyProtein", DomainPattern: "myprotein.com"},
		{ID: "5", Name: "HelloFresh", DomainPattern: "hellofresh.com"},
	}
}

func TestMatch_CodeContainsName(t *testing.T) {
	b, ok := Match("NIKE20", "", catalog())
	if !ok || b.Name != "Nike" {
		t.Fatalf("got %+v ok=%v", b, ok)
	}

	b2, ok2 := Match("GYMSHARK15", "", catalog())
	if !ok2 || b2.Name != "Gymshark" {
		t.Fatalf("got %+v ok=%v", b2, ok2)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	b, ok := Match("nike20", "", catalog())
	if !ok || b.Name != "Nike" {
		t.Fatalf("got %+v ok=%v", b, ok)
	}
}

func TestMatch_PrefixTableCrossCheck(t *testing.T) {
	// "Gym Shark Ltd" strips to "gymsharkltd"; first 4 chars "gyms" lead
	// the GYMSHARK prefix even though the code never contains the full
	// stripped name
	cat := []Brand{{ID: "9", Name: "Gym Shark Ltd", DomainPattern: "gymshark.com"}}
	b, ok := Match("GYMSHARK10", "", cat)
	if !ok || b.ID != "9" {
		t.Fatalf("got %+v ok=%v", b, ok)
	}
}

func TestMatch_ContextContainsDomain(t *testing.T) {
	b, ok := Match("ALEX15", "Get 15% off at gymshark.com with my code", catalog())
	if !ok || b.Name != "Gymshark" {
		t.Fatalf("got %+v ok=%v", b, ok)
	}
}

func TestMatch_ContextContainsName(t *testing.T) {
	b, ok := Match("COOK50", "Use my code at HelloFresh for $50 off your first box", catalog())
	if !ok || b.Name != "HelloFresh" {
		t.Fatalf("got %+v ok=%v", b, ok)
	}
}

func TestMatch_TierPriority(t *testing.T) {
	// code names Nike while the context names Gymshark; the code tier
	// outranks the context tiers
	b, ok := Match("NIKE20", "buy it at gymshark.com today", catalog())
	if !ok || b.Name != "Nike" {
		t.Fatalf("got %+v ok=%v", b, ok)
	}
}

func TestMatch_TieBreakByCatalogOrder(t *testing.T) {
	cat := []Brand{
		{ID: "a", Name: "Gymshark", DomainPattern: "gymshark.com"},
		{ID: "b", Name: "Gymshark EU", DomainPattern: "gymshark.eu"},
	}
	b, ok := Match("GYMSHARK10", "", cat)
	if !ok || b.ID != "a" {
		t.Fatalf("first qualifying catalog entry should win, got %+v", b)
	}
}

func TestMatch_NoMatch(t *testing.T) {
	if _, ok := Match("RANDOM123", "irrelevant text", catalog()); ok {
		t.Fatalf("expected no match")
	}
}

func TestMatch_EmptyCatalog(t *testing.T) {
	if _, ok := Match("NIKE20", "at nike.com", nil); ok {
		t.Fatalf("empty catalog must never match")
	}
}

func TestMatch_ShortNameIgnoredForCodeTier(t *testing.T) {
	// a 2-char stripped name must not substring-match codes
	cat := []Brand{{ID: "x", Name: "GO", DomainPattern: "go.example"}}
	if _, ok := Match("GOLD20", "", cat); ok {
		t.Fatalf("2-char name should not qualify at the code tier")
	}
}
