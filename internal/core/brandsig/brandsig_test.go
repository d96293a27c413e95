package brandsig

import "testing"

func domains(xs []Indicator) map[string]Indicator {
	m := make(map[string]Indicator, len(xs))
	for _, x := range xs {
		m[x.Domain] = x
	}
	return m
}

func TestExtract_DirectAndAffiliate(t *testing.T) {
	text := `
Check out gymshark.com for the latest gear!
Also visit https://www.myprotein.com/deals for protein.
My link: https://nordvpn.com/creator?ref=alex
Follow me on youtube.com and instagram.com
`
	got := domains(Extract(text))

	for _, want := range []string{"gymshark.com", "myprotein.com", "nordvpn.com"} {
		if _, ok := got[want]; !ok {
			t.Fatalf("missing %s in %v", want, got)
		}
	}
	for _, skip := range []string{"youtube.com", "instagram.com"} {
		if _, ok := got[skip]; ok {
			t.Fatalf("non-brand platform %s leaked: %v", skip, got)
		}
	}

	gs := got["gymshark.com"]
	if gs.Name != "Gymshark" {
		t.Fatalf("display name = %q, want Gymshark", gs.Name)
	}
	if gs.Kind != KindURL {
		t.Fatalf("kind = %q, want %q", gs.Kind, KindURL)
	}
}

func TestExtract_AffiliateKind(t *testing.T) {
	got := Extract("sign up via https://example.shop/landing?utm=yt&x=1")
	// the direct pattern also claims the bare domain; the first pattern
	// to see a domain wins and dedup keeps one entry
	if len(got) != 1 {
		t.Fatalf("expected 1 indicator, got %+v", got)
	}
	if got[0].Kind != KindURL {
		t.Fatalf("kind = %q, want %q", got[0].Kind, KindURL)
	}
}

func TestExtract_AffiliateOnlyURL(t *testing.T) {
	got := Extract("my link: https://drinkag1.example/landing?ref=chris ok")
	if len(got) != 1 || got[0].Kind != KindAffiliateURL {
		t.Fatalf("expected affiliate indicator, got %+v", got)
	}
	if got[0].Domain != "drinkag1.example" {
		t.Fatalf("domain = %q", got[0].Domain)
	}
}

func TestExtract_DedupByDomain(t *testing.T) {
	got := Extract("gymshark.com and www.gymshark.com and https://gymshark.com/deals")
	if len(got) != 1 {
		t.Fatalf("expected 1 indicator, got %+v", got)
	}
}

func TestExtract_ShortAndEmpty(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Fatalf("expected none, got %+v", got)
	}
	// domain length must exceed 4
	if got := Extract("see x.co now"); len(got) != 0 {
		t.Fatalf("short domain leaked: %+v", got)
	}
}

func TestExtract_AffiliateExcludesNonBrand(t *testing.T) {
	got := Extract("https://youtube.com/watch?utm=abc please subscribe")
	if len(got) != 0 {
		t.Fatalf("non-brand affiliate URL leaked: %+v", got)
	}
}
