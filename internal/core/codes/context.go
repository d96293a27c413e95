package codes

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContextRadius is the number of bytes captured on each side of a code's
// first occurrence
const ContextRadius = 150

// Record is a surviving code paired with its surrounding context and a
// best-effort brand guess. ProbableBrand is independent of the formal
// brand matcher and the two are allowed to disagree
type Record struct {
	Code          string
	Pattern       Pattern
	Context       string
	ProbableBrand string // empty when no guess
}

// rePrepBrand anchors a brand guess on a preposition near the code:
// "at Gymshark", "from Ridge", "for NordVPN"
var rePrepBrand = regexp.MustCompile(`(?i)(?:at|for|from|on)\s+([A-Z][A-Za-z0-9\s]{2,20}?)(?:\s+|[,.\-!])`)

var titleCaser = cases.Title(language.English)

// ExtractWithContext extracts codes and captures a bounded window of the
// source text around each one
func ExtractWithContext(text string) []Record {
	if text == "" {
		return nil
	}

	found := survivors(text)
	if len(found) == 0 {
		return nil
	}

	out := make([]Record, 0, len(found))
	for _, c := range found {
		code := c.Norm
		rec := Record{Code: code, Pattern: c.Pattern}

		// Codes came out of this same text, so the first case-insensitive
		// occurrence should always exist; an empty context is tolerated
		// rather than treated as an error
		if idx := indexFold(text, code); idx >= 0 {
			start := idx - ContextRadius
			if start < 0 {
				start = 0
			}
			end := idx + len(code) + ContextRadius
			if end > len(text) {
				end = len(text)
			}
			rec.Context = strings.TrimSpace(text[start:end])
			rec.ProbableBrand = guessBrand(code, rec.Context)
		}

		out = append(out, rec)
	}
	return out
}

// indexFold finds the first case-insensitive occurrence of an ASCII
// alphanumeric needle, returning a byte offset valid in s. Searching an
// uppercased copy instead would shift the offsets whenever a rune's
// uppercase form takes more bytes than the original
func indexFold(s, needle string) int {
	n := len(needle)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// guessBrand tries the brand-prefix table first, then a preposition-anchored
// scan of the context. Generic/denylisted matches are rejected
func guessBrand(code, context string) string {
	if p, ok := MatchBrandPrefix(code); ok {
		return titleCaser.String(strings.ToLower(p))
	}

	if context == "" {
		return ""
	}
	m := rePrepBrand.FindStringSubmatch(context)
	if m == nil {
		return ""
	}
	guess := strings.TrimSpace(m[1])
	if len(guess) < 3 || Denylisted(strings.ToUpper(guess)) {
		return ""
	}
	return guess
}
