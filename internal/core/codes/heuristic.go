package codes

// LooksLikeCode reports whether a normalized token has the shape of a
// human-chosen promotional code rather than a hash or identifier.
//
// Real codes read like NIKE20, ALEX15, GYMSHARK10: a name followed by
// digits. Hash-like noise reads like 0IMKOU or XF4GQMHKLUZM1VIG7: digit
// heavy, digits scattered mid-token. Each rule below targets one of those
// failure modes
func LooksLikeCode(code string) bool {
	if len(code) < minCodeLen {
		return false
	}

	// Numeric or hash-prefixed tokens are not codes
	if !isLetter(code[0]) {
		return false
	}

	letters, digits := 0, 0
	firstDigit := -1
	for i := 0; i < len(code); i++ {
		switch {
		case isLetter(code[i]):
			letters++
		case isDigit(code[i]):
			digits++
			if firstDigit < 0 {
				firstDigit = i
			}
		}
	}

	if letters > 0 && digits > 0 {
		// Digit-dominant tokens of 6+ chars are hash-like
		if len(code) >= 6 && digits > letters {
			return false
		}
		// Digits should cluster toward the end. More than two letters
		// after the first digit in an 8+ char token means digits are
		// scattered mid-token, another hash signal
		if firstDigit >= 0 {
			trailing := 0
			for i := firstDigit; i < len(code); i++ {
				if isLetter(code[i]) {
					trailing++
				}
			}
			if trailing > 2 && len(code) >= 8 {
				return false
			}
		}
	}

	// Pure-letter tokens of 4+ chars pass here; the filter decides
	// separately whether short ones need a brand prefix
	return true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
