// Package codes extracts candidate discount codes from creator text.
//
// Extraction runs several surface patterns independently over the raw text,
// concatenates the candidates, then pushes everything through a shared
// false-positive filter. The filter is what makes the output usable: bare
// uppercase runs in titles and transcripts are overwhelmingly URLs,
// acronyms, and shouting, not codes.
package codes

import (
	"regexp"
	"strings"
)

// Pattern identifies which surface pattern produced a candidate
type Pattern string

const (
	// PatternKeyword matches "code/promo/discount/coupon <TOKEN>"
	PatternKeyword Pattern = "keyword"
	// PatternVerb matches "use/enter/try/apply/redeem [code] <TOKEN>"
	PatternVerb Pattern = "verb"
	// PatternSavings matches "N% off with/using/code <TOKEN>"
	PatternSavings Pattern = "savings"
	// PatternBare matches standalone LETTERS+DIGITS runs in uppercased text
	PatternBare Pattern = "bare"
	// PatternURLPath matches a code as the final path segment of a URL
	PatternURLPath Pattern = "url_path"
)

// Candidate is a raw extraction before filtering. Ephemeral: it exists only
// while one text blob is being processed
type Candidate struct {
	Raw     string
	Norm    string
	Pattern Pattern
}

const (
	minCodeLen = 4
	maxCodeLen = 20
)

var (
	reKeyword = regexp.MustCompile(`(?i)(?:code|promo|discount|coupon)[\s:]*["']?([A-Z0-9]{3,25})["']?`)
	reVerb    = regexp.MustCompile(`(?i)(?:use|enter|try|apply|redeem)\s+(?:code|promo|my\s+code)?[\s:]*["']?([A-Z0-9]{3,25})["']?`)
	reSavings = regexp.MustCompile(`(?i)(?:\d+%?\s*off|discount)\s+(?:with|using|code)\s+["']?([A-Z0-9]{3,25})["']?`)
	reBare    = regexp.MustCompile(`\b([A-Z]{2,}[0-9]+[A-Z0-9]*)\b`)
	reURLPath = regexp.MustCompile(`(?i)(?:https?://)?[\w.-]+\.[\w]+/([A-Z][A-Z0-9]{3,15})\b`)
)

// Extract returns the deduplicated, order-preserving list of normalized
// codes found in text. Empty input yields an empty result, never an error
func Extract(text string) []string {
	cands := survivors(text)
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Norm)
	}
	return out
}

// survivors is candidates after the false-positive filter, deduplicated by
// normalized form. The first pattern to produce a code wins attribution
func survivors(text string) []Candidate {
	cands := candidates(text)
	out := make([]Candidate, 0, len(cands))
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		if !keep(c.Norm, seen) {
			continue
		}
		seen[c.Norm] = struct{}{}
		out = append(out, c)
	}
	return out
}

// candidates runs every pattern independently and concatenates the results
// in pattern priority order. No merging happens here; the filter owns dedup
func candidates(text string) []Candidate {
	if text == "" {
		return nil
	}

	var cands []Candidate
	add := func(p Pattern, raw string) {
		cands = append(cands, Candidate{Raw: raw, Norm: normalize(raw), Pattern: p})
	}

	for _, m := range reKeyword.FindAllStringSubmatch(text, -1) {
		add(PatternKeyword, m[1])
	}
	for _, m := range reVerb.FindAllStringSubmatch(text, -1) {
		add(PatternVerb, m[1])
	}
	for _, m := range reSavings.FindAllStringSubmatch(text, -1) {
		add(PatternSavings, m[1])
	}

	// The bare pattern scans the uppercased text so lowercase mentions
	// ("use nike20") still surface, and requires letters followed by at
	// least one digit, the strongest "human mnemonic" shape
	for _, m := range reBare.FindAllStringSubmatch(strings.ToUpper(text), -1) {
		add(PatternBare, m[1])
	}

	// URL path segments are the noisiest source, so they must pass the
	// real-code heuristic before even entering the shared filter
	for _, m := range reURLPath.FindAllStringSubmatch(text, -1) {
		norm := normalize(m[1])
		if len(norm) < minCodeLen || Denylisted(norm) || !LooksLikeCode(norm) {
			continue
		}
		add(PatternURLPath, m[1])
	}

	return cands
}

// keep applies the false-positive filter to a normalized candidate.
// Order matters: cheap rejections first, heuristic last
func keep(norm string, seen map[string]struct{}) bool {
	if norm == "" {
		return false
	}
	if _, dup := seen[norm]; dup {
		return false
	}
	if Denylisted(norm) {
		return false
	}
	if len(norm) < minCodeLen || len(norm) > maxCodeLen {
		return false
	}
	if !alnum(norm) {
		return false
	}
	if !LooksLikeCode(norm) {
		return false
	}
	// Short pure-letter tokens are almost always real words; only a known
	// brand prefix rescues them
	if len(norm) <= 6 && !hasDigit(norm) {
		if _, ok := MatchBrandPrefix(norm); !ok {
			return false
		}
	}
	return true
}

func normalize(raw string) string {
	return strings.Trim(strings.ToUpper(strings.TrimSpace(raw)), `'"`)
}

func alnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return s != ""
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
