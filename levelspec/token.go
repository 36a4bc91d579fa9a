package levelspec

import "strings"

// WildcardText is the text form of a Wildcard token.
const WildcardText = "%"

// Kind distinguishes the three kinds of level token.
type Kind int

const (
	// Relative marks an elided level whose value is supplied by context.
	Relative Kind = iota
	// Wildcard matches any value at its level.
	Wildcard
	// Term is a concrete name.
	Term
)

func (k Kind) String() string {
	switch k {
	case Relative:
		return "Relative"
	case Wildcard:
		return "Wildcard"
	case Term:
		return "Term"
	default:
		return "Unknown"
	}
}

// Token is a single level of a LevelSpec. The zero Token is Relative.
type Token struct {
	kind Kind
	text string
}

// NewToken converts text to a token: "" is Relative, "%" is Wildcard and
// anything else is a Term holding text verbatim.
func NewToken(text string) Token {
	switch text {
	case "":
		return Token{kind: Relative}
	case WildcardText:
		return Token{kind: Wildcard}
	default:
		return Token{kind: Term, text: text}
	}
}

// WildcardToken returns the Wildcard token.
func WildcardToken() Token {
	return Token{kind: Wildcard}
}

// RelativeToken returns the Relative token.
func RelativeToken() Token {
	return Token{}
}

func (t Token) Kind() Kind {
	return t.kind
}

func (t Token) IsRelative() bool {
	return t.kind == Relative
}

func (t Token) IsWildcard() bool {
	return t.kind == Wildcard
}

func (t Token) IsTerm() bool {
	return t.kind == Term
}

// String returns the text form of t. NewToken(t.String()) == t for every
// token.
func (t Token) String() string {
	switch t.kind {
	case Wildcard:
		return WildcardText
	case Term:
		return t.text
	default:
		return ""
	}
}

func (t Token) Equal(other Token) bool {
	return t == other
}

// Compare orders tokens by kind, then by text.
func Compare(a, b Token) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	return strings.Compare(a.text, b.text)
}

// upper returns t with its Term payload uppercased.
func (t Token) upper() Token {
	if t.kind != Term {
		return t
	}
	return Token{kind: Term, text: strings.ToUpper(t.text)}
}

func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Token) UnmarshalText(text []byte) error {
	*t = NewToken(string(text))
	return nil
}
