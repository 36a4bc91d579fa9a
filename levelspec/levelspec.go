package levelspec

import (
	"fmt"
	"strings"
)

// LevelSpec addresses a show, a sequence within it or a shot within that.
// The show is always present; depth records the innermost level present, so
// a shot without a sequence cannot be represented.
type LevelSpec struct {
	show     Token
	sequence Token
	shot     Token
	depth    LevelName
}

// Parse recognizes text and builds a LevelSpec from its tokens.
func Parse(text string, opts ...Option) (LevelSpec, error) {
	o := buildOptions(opts)
	tokens, err := Recognize(text, o.mode)
	if err != nil {
		return LevelSpec{}, err
	}
	return fromTokens(tokens), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, opts ...Option) LevelSpec {
	ls, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return ls
}

// New builds a LevelSpec from one to three tokens, outermost first.
func New(tokens ...Token) (LevelSpec, error) {
	if len(tokens) < 1 || len(tokens) > 3 {
		return LevelSpec{}, fmt.Errorf("levelspec needs 1 to 3 levels, got %d", len(tokens))
	}
	return fromTokens(tokens), nil
}

func fromTokens(tokens []Token) LevelSpec {
	switch len(tokens) {
	case 1:
		return LevelSpec{show: tokens[0], depth: Show}
	case 2:
		return LevelSpec{show: tokens[0], sequence: tokens[1], depth: Sequence}
	case 3:
		return LevelSpec{show: tokens[0], sequence: tokens[1], shot: tokens[2], depth: Shot}
	default:
		panic(fmt.Sprintf("levelspec: cannot build a levelspec from %d levels", len(tokens)))
	}
}

// FromShow builds a show levelspec without running the grammar. In Strict
// mode the name is uppercased.
func FromShow(show string, opts ...Option) LevelSpec {
	return fromParts(buildOptions(opts), show)
}

// FromSequence builds a sequence levelspec without running the grammar.
func FromSequence(show, sequence string, opts ...Option) LevelSpec {
	return fromParts(buildOptions(opts), show, sequence)
}

// FromShot builds a shot levelspec without running the grammar.
func FromShot(show, sequence, shot string, opts ...Option) LevelSpec {
	return fromParts(buildOptions(opts), show, sequence, shot)
}

func fromParts(o options, parts ...string) LevelSpec {
	tokens := make([]Token, len(parts))
	for i, part := range parts {
		tokens[i] = NewToken(part)
	}
	ls := fromTokens(tokens)
	if o.mode == Strict {
		ls.SetUpper()
	}
	return ls
}

func (ls LevelSpec) Show() Token {
	return ls.show
}

// Sequence returns the sequence token and whether the levelspec has one.
func (ls LevelSpec) Sequence() (Token, bool) {
	if ls.depth < Sequence {
		return Token{}, false
	}
	return ls.sequence, true
}

// Shot returns the shot token and whether the levelspec has one.
func (ls LevelSpec) Shot() (Token, bool) {
	if ls.depth < Shot {
		return Token{}, false
	}
	return ls.shot, true
}

// Level returns the token at level name and whether it is present.
func (ls LevelSpec) Level(name LevelName) (Token, bool) {
	switch name {
	case Show:
		return ls.show, true
	case Sequence:
		return ls.Sequence()
	case Shot:
		return ls.Shot()
	default:
		return Token{}, false
	}
}

// Depth returns the innermost level present.
func (ls LevelSpec) Depth() LevelName {
	return ls.depth
}

// Tokens returns the present levels, outermost first.
func (ls LevelSpec) Tokens() []Token {
	tokens := []Token{ls.show, ls.sequence, ls.shot}
	return tokens[:ls.depth+1]
}

func (ls LevelSpec) String() string {
	tokens := ls.Tokens()
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, ".")
}

func (ls LevelSpec) Equal(other LevelSpec) bool {
	return ls == other
}

// SetUpper uppercases every Term in place. Wildcards and relative levels are
// left alone.
func (ls *LevelSpec) SetUpper() {
	ls.show = ls.show.upper()
	ls.sequence = ls.sequence.upper()
	ls.shot = ls.shot.upper()
}

// Upper returns a copy of ls with every Term uppercased.
func (ls LevelSpec) Upper() LevelSpec {
	ls.SetUpper()
	return ls
}

// IsConcrete reports whether ls contains no wildcard. Relative levels do not
// make a levelspec a query.
func (ls LevelSpec) IsConcrete() bool {
	for _, tok := range ls.Tokens() {
		if tok.IsWildcard() {
			return false
		}
	}
	return true
}

// IsAbsolute reports whether ls contains no relative level.
func (ls LevelSpec) IsAbsolute() bool {
	for _, tok := range ls.Tokens() {
		if tok.IsRelative() {
			return false
		}
	}
	return true
}

// Matches reports whether candidate is selected by ls used as a pattern:
// both have the same depth and every level of ls is a wildcard or equal to
// the candidate's level.
func (ls LevelSpec) Matches(candidate LevelSpec) bool {
	if ls.depth != candidate.depth {
		return false
	}
	want := ls.Tokens()
	got := candidate.Tokens()
	for i := range want {
		if want[i].IsWildcard() {
			continue
		}
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
