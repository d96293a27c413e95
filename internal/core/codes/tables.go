package codes

// denylist holds common uppercase tokens that are never discount codes.
// Curated from observed transcript/description noise: technical acronyms,
// platform vocabulary, generic English, and short stop-words/names.
var denylist = map[string]struct{}{}

func init() {
	for _, w := range denylistWords {
		denylist[w] = struct{}{}
	}
}

var denylistWords = []string{
	// technical
	"HTTP", "HTTPS", "WWW", "COM", "ORG", "NET", "HTML", "CSS", "JSON",
	"API", "SDK", "URL", "URI", "PDF", "PNG", "JPG", "GIF", "SVG",
	"MP4", "MP3", "USB", "CPU", "GPU", "RAM", "SSD", "HDD", "IOS",
	"VPN", "DNS", "FTP", "SSH", "SQL", "PHP", "XML", "TXT", "DOC",
	"EDU", "GOV", "APP", "APK",
	// video / social vocabulary
	"SUBSCRIBE", "LIKE", "SHARE", "VIDEO", "VIDEOS", "COMMENT", "FOLLOW",
	"CHECK", "BELOW", "HERE", "MORE", "INFO", "ABOUT", "WATCH",
	"LIVE", "LINK", "CLICK", "LINKS", "CHANNEL", "PLAYLIST",
	"CONTENT", "CREATOR", "UPLOAD", "STREAM", "EPISODE", "PODCAST",
	"INTRO", "OUTRO", "TIMESTAMPS", "CHAPTERS",
	// generic words common in transcripts and descriptions
	"FREE", "SALE", "SHOP", "BEST", "TRUE", "FALSE", "NULL", "NONE",
	"SELF", "THANKS", "THANK", "LOVE", "AMAZING", "GREAT", "GOOD",
	"THIS", "THAT", "WITH", "FROM", "YOUR", "HAVE", "BEEN", "WILL",
	"THEY", "THEM", "THAN", "THEN", "JUST", "ALSO", "ONLY", "VERY",
	"BACK", "MUCH", "SOME", "TIME", "WHAT", "WHEN", "WHERE", "WHICH",
	"MAKE", "MADE", "EACH", "MOST", "BOTH", "WELL", "LONG", "HIGH",
	"OVER", "SUCH", "TAKE", "LAST", "FIRST", "NEXT", "OPEN", "FULL",
	"SAVE", "MONEY", "DEAL", "DEALS", "OFFER", "OFFERS",
	"WORK", "WORKING", "WORKS", "STILL", "TODAY", "NEW", "TOP",
	"CODE", "CODES", "PROMO", "DISCOUNT", "COUPON", "COUPONS",
	"BOOK", "BOOKS", "SUPPORT", "HELP", "FIND", "SHOW", "LOOK",
	"NEED", "WANT", "KNOW", "THINK", "FEEL", "SURE", "REAL",
	"PART", "THING", "THINGS", "EVERY", "REALLY", "ACTUALLY",
	"PEOPLE", "WORLD", "PLACE", "YEAR", "YEARS", "LIFE",
	"RIGHT", "LEFT", "DOWN", "GOING", "COME", "CAME",
	"KEEP", "GIVE", "TALK", "TELL", "TOLD", "SAID", "SAYS",
	"BODY", "FOOD", "DIET", "MEAL", "WEIGHT", "TRAIN", "TRAINING",
	"WORKOUT", "FITNESS", "HEALTH", "HEALTHY", "MUSCLE", "PROTEIN",
	"SKIN", "HAIR", "FACE", "PRODUCT", "PRODUCTS", "REVIEW", "REVIEWS",
	"BRAND", "BRANDS", "COMPANY", "BUSINESS", "MARKET", "PRICE",
	"START", "STOP", "PLAY", "GAME", "GAMES", "LEVEL",
	"TEAM", "GROUP", "JOIN", "MEMBER", "SIGN",
	"EXPOSED", "TRUTH", "FAKE", "SCAM", "LEGIT",
	"TEST", "TESTED", "TESTING", "RESULTS", "RESULT",
	"EDIT", "PHOTO", "CAMERA", "PHONE", "SCREEN",
	"DAY", "DAYS", "WEEK", "WEEKS", "MONTH", "MONTHS",
	"CALL", "TEXT", "EMAIL", "SEND", "POST", "SITE",
	// short stop-words and names that slip through
	"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL",
	"CAN", "HER", "HIS", "ONE", "OUR", "OUT", "HAD", "HAS",
	"HOW", "ITS", "LET", "MAY", "OLD", "SEE", "WAY", "WHO",
	"DID", "GET", "GOT", "HIM", "SET", "TWO", "TEN",
	"RUN", "SAY", "SHE", "TOO", "USE", "DAD", "MOM",
	"BIG", "END", "FAR", "FEW", "OWN", "PUT", "RED", "TRY",
	"KEN", "KENNY", "BEN", "DAN", "BOB", "TOM", "JIM",
	// country / currency codes
	"USD", "EUR", "GBP", "CAD", "AUD", "NZD",
	"USA", "UK",
}

// BrandPrefixes lists brand names collapsed to uppercase that commonly lead
// real codes (NIKE20, GYMSHARK10). Short pure-letter candidates survive the
// filter only when they start with one of these. Read-only after init.
var BrandPrefixes = []string{
	"NIKE", "ADIDAS", "GYMSHARK", "MYPROTEIN", "SEPHORA", "GLOSSIER",
	"HELLOFRESH", "NORDVPN", "EXPRESSVPN", "SURFSHARK", "SQUARESPACE",
	"SKILLSHARE", "AUDIBLE", "RIDGE", "MANSCAPED", "RAYCON", "MVMT",
	"CUTS", "ALO", "LULU", "GHOST", "GORILLA", "BLOOM", "LIQUID",
	"TRANSPARENT", "DBRAND", "AG1",
}

// Denylisted reports whether the normalized (uppercase) token is in the
// false-positive denylist
func Denylisted(token string) bool {
	_, ok := denylist[token]
	return ok
}

// MatchBrandPrefix returns the brand-code prefix the uppercase code starts
// with, if any
func MatchBrandPrefix(code string) (string, bool) {
	for _, p := range BrandPrefixes {
		if len(code) >= len(p) && code[:len(p)] == p {
			return p, true
		}
	}
	return "", false
}
