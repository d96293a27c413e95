// Package brandmatch resolves a discount code to the brand that owns it,
// given the code, its surrounding context, and a read-only snapshot of the
// known-brand catalog.
//
// Matching is a strict first-match-wins chain of tiers. There is no scoring
// across tiers: the first brand that qualifies at the earliest tier is the
// answer. Ties within a tier resolve by catalog order, which callers are
// expected to keep deterministic (the brands repo orders by creation time)
package brandmatch

import (
	"strings"

	"backr/internal/core/codes"
)

// Brand is one catalog entry. The catalog is owned by the persistence
// layer; the matcher treats it as an immutable value snapshot
type Brand struct {
	ID            string
	Name          string
	DomainPattern string
}

// tier is one matching strategy. ok reports whether a brand qualified
type tier func(code, context string, catalog []Brand) (Brand, bool)

// tiers in priority order. Expressed as an ordered chain rather than
// nested conditionals so each strategy stays independently testable
var tiers = []tier{
	codeContainsName,
	prefixTableCrossCheck,
	contextContainsDomain,
	contextContainsName,
}

// Match returns the best-matching brand for a code, or ok=false when no
// brand qualifies. An empty catalog is a normal no-match, not an error
func Match(code, context string, catalog []Brand) (Brand, bool) {
	if len(catalog) == 0 {
		return Brand{}, false
	}
	codeLower := strings.ToLower(code)
	contextLower := strings.ToLower(context)
	for _, t := range tiers {
		if b, ok := t(codeLower, contextLower, catalog); ok {
			return b, true
		}
	}
	return Brand{}, false
}

// stripName lowercases a brand name and removes every non-alphanumeric
// rune, so "Hello Fresh!" compares as "hellofresh"
func stripName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Tier 1: the stripped brand name appears inside the code (NIKE20 -> Nike).
// Names shorter than 3 stripped chars are too ambiguous to trust
func codeContainsName(code, _ string, catalog []Brand) (Brand, bool) {
	for _, b := range catalog {
		n := stripName(b.Name)
		if len(n) >= 3 && strings.Contains(code, n) {
			return b, true
		}
	}
	return Brand{}, false
}

// Tier 2: the code starts with a curated brand-code prefix whose start
// lines up with a catalog brand's stripped name. A looser confirmation
// path for brands whose catalog name differs from the common code prefix
func prefixTableCrossCheck(code, _ string, catalog []Brand) (Brand, bool) {
	codeUpper := strings.ToUpper(code)
	for _, p := range codes.BrandPrefixes {
		if !strings.HasPrefix(codeUpper, p) {
			continue
		}
		pl := strings.ToLower(p)
		for _, b := range catalog {
			n := stripName(b.Name)
			if n == "" {
				continue
			}
			if len(n) > 4 {
				n = n[:4]
			}
			if strings.HasPrefix(pl, n) {
				return b, true
			}
		}
	}
	return Brand{}, false
}

// Tier 3: the brand's domain pattern literally appears in the context
func contextContainsDomain(_, context string, catalog []Brand) (Brand, bool) {
	if context == "" {
		return Brand{}, false
	}
	for _, b := range catalog {
		d := strings.ToLower(b.DomainPattern)
		if d != "" && strings.Contains(context, d) {
			return b, true
		}
	}
	return Brand{}, false
}

// Tier 4: the brand's display name appears in the context
func contextContainsName(_, context string, catalog []Brand) (Brand, bool) {
	if context == "" {
		return Brand{}, false
	}
	for _, b := range catalog {
		if len(b.Name) >= 3 && strings.Contains(context, strings.ToLower(b.Name)) {
			return b, true
		}
	}
	return Brand{}, false
}
