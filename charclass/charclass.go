// Package charclass classifies ASCII bytes with explicit case restrictions.
//
// The predicates never consult unicode tables: a levelspec is plain ASCII and
// anything outside A-Z, a-z and 0-9 is rejected by the callers.
package charclass

// Case restricts which letters a matcher accepts.
type Case int

const (
	// Any accepts upper and lowercase letters.
	Any Case = iota
	// Upper accepts A-Z only.
	Upper
	// Lower accepts a-z only.
	Lower
)

func (c Case) String() string {
	switch c {
	case Any:
		return "any"
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "unknown"
	}
}

// IsAlphaLower reports whether ch is a lowercase ASCII letter.
func IsAlphaLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

// IsAlphaUpper reports whether ch is an uppercase ASCII letter.
func IsAlphaUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

// IsDigit reports whether ch is a decimal digit.
func IsDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// IsAlnumLower reports whether ch is a lowercase letter or a digit.
func IsAlnumLower(ch byte) bool {
	return IsAlphaLower(ch) || IsDigit(ch)
}

// IsAlnumUpper reports whether ch is an uppercase letter or a digit.
func IsAlnumUpper(ch byte) bool {
	return IsAlphaUpper(ch) || IsDigit(ch)
}

// Letter reports whether ch is a letter permitted by c.
func (c Case) Letter(ch byte) bool {
	switch c {
	case Upper:
		return IsAlphaUpper(ch)
	case Lower:
		return IsAlphaLower(ch)
	default:
		return IsAlphaUpper(ch) || IsAlphaLower(ch)
	}
}

// Alnum reports whether ch is a digit or a letter permitted by c.
func (c Case) Alnum(ch byte) bool {
	return IsDigit(ch) || c.Letter(ch)
}

// Digits returns the length of the run of one or more digits at the start of
// s, or 0 when s does not start with a digit.
func Digits(s string) int {
	n := 0
	for n < len(s) && IsDigit(s[n]) {
		n++
	}
	return n
}

// Identifier returns the length of the run "letter {letter | digit}" at the
// start of s, with letters restricted by c. It returns 0 when s does not
// start with a permitted letter.
func Identifier(s string, c Case) int {
	if len(s) == 0 || !c.Letter(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && c.Alnum(s[n]) {
		n++
	}
	return n
}
