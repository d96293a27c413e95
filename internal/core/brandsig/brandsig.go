// Package brandsig finds brand-identifying web signals in creator text,
// independent of any discount code. Indicators are matching evidence only
// and are never persisted directly.
package brandsig

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind classifies how an indicator was found
type Kind string

const (
	// KindURL is a bare or scheme-prefixed brand domain
	KindURL Kind = "url"
	// KindAffiliateURL is a URL carrying a tracking/referral query param
	KindAffiliateURL Kind = "affiliate_url"
)

// Indicator is a domain/name pair discovered in text
type Indicator struct {
	Name   string // display name, title-cased first domain label
	Domain string // normalized lowercase domain, www. stripped
	Kind   Kind
}

var (
	// Bare or scheme-prefixed domains ending in a small TLD whitelist.
	// The whitelist keeps transcript noise (file names, version strings)
	// from registering as domains
	reDirectURL = regexp.MustCompile(
		`(?i)(?:https?://)?(?:www\.)?([a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.(?:com|co|io|net|org|shop|store|xyz))\b`)

	// Any URL whose query string carries a referral/tracking parameter
	reAffiliateURL = regexp.MustCompile(
		`(?i)(?:https?://)?[\w.-]+\.[\w]+/[\w/-]*\?[^"\s]*(?:ref|aff|utm|code|coupon)=[^"\s&]+`)
)

// nonBrandDomains are platforms a creator links to that never identify a
// sponsoring brand: video/social, payment, link shorteners, dev platforms
var nonBrandDomains = map[string]struct{}{
	"youtube.com":   {},
	"youtu.be":      {},
	"twitter.com":   {},
	"x.com":         {},
	"instagram.com": {},
	"tiktok.com":    {},
	"facebook.com":  {},
	"reddit.com":    {},
	"google.com":    {},
	"amazon.com":    {},
	"linktr.ee":     {},
	"bit.ly":        {},
	"patreon.com":   {},
	"paypal.com":    {},
	"ko-fi.com":     {},
	"gofundme.com":  {},
	"discord.gg":    {},
	"discord.com":   {},
	"twitch.tv":     {},
	"spotify.com":   {},
	"apple.com":     {},
	"github.com":    {},
	"linkedin.com":  {},
	"pinterest.com": {},
}

var titleCaser = cases.Title(language.English)

// Extract returns brand indicators found in text, deduplicated by
// normalized domain. Empty input yields an empty result
func Extract(text string) []Indicator {
	if text == "" {
		return nil
	}

	var out []Indicator
	seen := make(map[string]struct{})

	add := func(domain string, kind Kind) {
		if domain == "" || len(domain) <= 4 {
			return
		}
		if _, skip := nonBrandDomains[domain]; skip {
			return
		}
		if _, dup := seen[domain]; dup {
			return
		}
		seen[domain] = struct{}{}
		out = append(out, Indicator{
			Name:   titleCaser.String(strings.SplitN(domain, ".", 2)[0]),
			Domain: domain,
			Kind:   kind,
		})
	}

	for _, m := range reDirectURL.FindAllStringSubmatch(text, -1) {
		add(strings.ToLower(m[1]), KindURL)
	}

	for _, m := range reAffiliateURL.FindAllString(text, -1) {
		raw := m
		if !strings.Contains(raw, "://") {
			raw = "http://" + raw
		}
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		domain := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
		add(domain, KindAffiliateURL)
	}

	return out
}
