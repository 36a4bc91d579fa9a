package levelspec

import (
	"strings"

	"github.com/dhamidi/levelspec/charclass"
)

// AssetDev is the sequence keyword after which a shot may be alphanumeric.
const AssetDev = "ASSETDEV"

// scanner walks a levelspec left to right. Every matcher consumes a whole
// component or nothing.
type scanner struct {
	input string
	pos   int
	mode  CaseMode
}

func (s *scanner) rest() string {
	return s.input[s.pos:]
}

func (s *scanner) done() bool {
	return s.pos == len(s.input)
}

func (s *scanner) dot() bool {
	if s.pos < len(s.input) && s.input[s.pos] == '.' {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) take(n int) (string, bool) {
	if n == 0 {
		return "", false
	}
	text := s.input[s.pos : s.pos+n]
	s.pos += n
	return text, true
}

func (s *scanner) wildcard() (string, bool) {
	if strings.HasPrefix(s.rest(), WildcardText) {
		return s.take(len(WildcardText))
	}
	return "", false
}

// name matches a show or sequence: letter {letter | digit}, or the wildcard.
func (s *scanner) name() (string, bool) {
	if text, ok := s.take(charclass.Identifier(s.rest(), s.mode.letters())); ok {
		return text, true
	}
	return s.wildcard()
}

// shot matches a shot following seq. Shots are digits unless seq is the
// ASSETDEV keyword, which also admits letter {letter | digit}.
func (s *scanner) shot(seq string) (string, bool) {
	if s.isAssetDev(seq) {
		if text, ok := s.take(charclass.Identifier(s.rest(), s.mode.letters())); ok {
			return text, true
		}
	}
	if text, ok := s.take(charclass.Digits(s.rest())); ok {
		return text, true
	}
	return s.wildcard()
}

func (s *scanner) isAssetDev(seq string) bool {
	if s.mode == Relaxed {
		return strings.EqualFold(seq, AssetDev)
	}
	return seq == AssetDev
}

// alternative is one shape of levelspec. match reports whether the shape
// matched a prefix of the input; Recognize checks that nothing is left over.
type alternative struct {
	name  string
	match func(s *scanner) ([]Token, bool)
}

// alternatives are tried in order and the first one that consumes the whole
// input wins. Several inputs are accepted by more than one shape, so the
// order is part of the grammar.
var alternatives = []alternative{
	{"..shot", func(s *scanner) ([]Token, bool) {
		if !s.dot() || !s.dot() {
			return nil, false
		}
		shot, ok := s.shot("")
		if !ok {
			return nil, false
		}
		return []Token{RelativeToken(), RelativeToken(), NewToken(shot)}, true
	}},
	{".seq.shot", func(s *scanner) ([]Token, bool) {
		if !s.dot() {
			return nil, false
		}
		seq, ok := s.name()
		if !ok || !s.dot() {
			return nil, false
		}
		shot, ok := s.shot(seq)
		if !ok {
			return nil, false
		}
		return []Token{RelativeToken(), NewToken(seq), NewToken(shot)}, true
	}},
	{".seq.", func(s *scanner) ([]Token, bool) {
		if !s.dot() {
			return nil, false
		}
		seq, ok := s.name()
		if !ok || !s.dot() {
			return nil, false
		}
		return []Token{RelativeToken(), NewToken(seq), RelativeToken()}, true
	}},
	{".seq", func(s *scanner) ([]Token, bool) {
		if !s.dot() {
			return nil, false
		}
		seq, ok := s.name()
		if !ok {
			return nil, false
		}
		return []Token{RelativeToken(), NewToken(seq)}, true
	}},
	{"show.seq.shot", func(s *scanner) ([]Token, bool) {
		show, ok := s.name()
		if !ok || !s.dot() {
			return nil, false
		}
		seq, ok := s.name()
		if !ok || !s.dot() {
			return nil, false
		}
		shot, ok := s.shot(seq)
		if !ok {
			return nil, false
		}
		return []Token{NewToken(show), NewToken(seq), NewToken(shot)}, true
	}},
	{"show..", func(s *scanner) ([]Token, bool) {
		show, ok := s.name()
		if !ok || !s.dot() || !s.dot() {
			return nil, false
		}
		return []Token{NewToken(show), RelativeToken(), RelativeToken()}, true
	}},
	{"show.seq.", func(s *scanner) ([]Token, bool) {
		show, ok := s.name()
		if !ok || !s.dot() {
			return nil, false
		}
		seq, ok := s.name()
		if !ok || !s.dot() {
			return nil, false
		}
		return []Token{NewToken(show), NewToken(seq), RelativeToken()}, true
	}},
	{"show.seq", func(s *scanner) ([]Token, bool) {
		show, ok := s.name()
		if !ok || !s.dot() {
			return nil, false
		}
		seq, ok := s.name()
		if !ok {
			return nil, false
		}
		return []Token{NewToken(show), NewToken(seq)}, true
	}},
	{"show.", func(s *scanner) ([]Token, bool) {
		show, ok := s.name()
		if !ok || !s.dot() {
			return nil, false
		}
		return []Token{NewToken(show), RelativeToken()}, true
	}},
	{"show", func(s *scanner) ([]Token, bool) {
		show, ok := s.name()
		if !ok {
			return nil, false
		}
		return []Token{NewToken(show)}, true
	}},
}

// Recognize splits input into one to three level tokens, outermost first.
// The whole input must match one of the levelspec shapes; otherwise a
// *ParseError carrying input is returned.
func Recognize(input string, mode CaseMode) ([]Token, error) {
	_, tokens, ok := recognize(input, mode)
	if !ok {
		return nil, &ParseError{Input: input}
	}
	return tokens, nil
}

// Shape returns the name of the shape that recognizes input, such as
// "show.seq.shot" or "..shot", or "" when input is not a levelspec.
func Shape(input string, mode CaseMode) string {
	name, _, _ := recognize(input, mode)
	return name
}

func recognize(input string, mode CaseMode) (string, []Token, bool) {
	for _, alt := range alternatives {
		s := &scanner{input: input, mode: mode}
		if tokens, ok := alt.match(s); ok && s.done() {
			return alt.name, tokens, true
		}
	}
	return "", nil, false
}
