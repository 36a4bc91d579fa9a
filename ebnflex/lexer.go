// Package ebnflex splits text into tokens described by the productions of an
// EBNF grammar.
package ebnflex

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/ebnf"
)

// Token kinds produced by the lexer itself rather than by a production.
const (
	EOF   = "EOF"
	Error = "ERROR"
)

// Token is a lexical token and the byte offset it starts at.
type Token struct {
	Kind    string
	Literal string
	Offset  int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %s %q", t.Offset, t.Kind, t.Literal)
}

type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input with a fixed list of token productions.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	input    string
	pos      int
	memo     map[memoKey]int // -1 records a failed match
	visiting map[memoKey]bool
}

// NewLexer returns a lexer that recognizes the productions named by kinds.
// The longest match wins; on a tie the kind listed first wins.
func NewLexer(grammar ebnf.Grammar, kinds []string, input string) (*Lexer, error) {
	for _, kind := range kinds {
		if prod, ok := grammar[kind]; !ok || prod.Expr == nil {
			return nil, fmt.Errorf("token production %q not found in grammar", kind)
		}
	}
	return &Lexer{
		grammar:  grammar,
		kinds:    kinds,
		input:    input,
		visiting: make(map[memoKey]bool),
	}, nil
}

// LoadGrammar parses the EBNF grammar read from r.
func LoadGrammar(filename string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// LoadGrammarFile parses the EBNF grammar in filename.
func LoadGrammarFile(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return LoadGrammar(filename, f)
}

// NextToken returns the next token. At the end of input it returns an EOF
// token together with io.EOF. Bytes no production matches come back one at
// a time as Error tokens.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Offset: l.pos}, io.EOF
	}

	start := l.pos
	// Offsets shift between tokens, so results from the previous token are
	// useless.
	l.memo = make(map[memoKey]int)

	bestKind, bestLen := "", 0
	for _, kind := range l.kinds {
		if n := l.matchName(kind, start); n > bestLen {
			bestKind, bestLen = kind, n
		}
	}

	if bestLen == 0 {
		l.pos++
		return Token{Kind: Error, Literal: l.input[start:l.pos], Offset: start}, nil
	}

	l.pos += bestLen
	return Token{Kind: bestKind, Literal: l.input[start:l.pos], Offset: start}, nil
}

// Tokenize reads every token, ending with EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		tokens = append(tokens, tok)
		if err == io.EOF {
			return tokens
		}
	}
}

// match returns the length of the longest greedy match of expr at offset, or
// 0 when it does not match.
func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		if len(e.String) > 0 && len(l.input)-offset >= len(e.String) && l.input[offset:offset+len(e.String)] == e.String {
			return len(e.String)
		}
		return 0

	case *ebnf.Range:
		if offset >= len(l.input) || len(e.Begin.String) != 1 || len(e.End.String) != 1 {
			return 0
		}
		ch := l.input[offset]
		if ch >= e.Begin.String[0] && ch <= e.End.String[0] {
			return 1
		}
		return 0

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.match(item, offset+total)
			if n == 0 && !optional(item) {
				return 0
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := 0
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.match(e.Body, offset+total)
			if n == 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		return l.match(e.Body, offset)

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		return l.matchName(e.String, offset)

	default:
		return 0
	}
}

// optional reports whether expr may match nothing inside a sequence.
func optional(expr ebnf.Expression) bool {
	switch expr.(type) {
	case *ebnf.Option, *ebnf.Repetition:
		return true
	}
	return false
}

// matchName matches the production called name, memoizing by offset. A
// production reached again at the same offset fails, which stops left
// recursion.
func (l *Lexer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := l.memo[key]; ok {
		return max(n, 0)
	}
	if l.visiting[key] {
		return 0
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return 0
	}

	l.visiting[key] = true
	n := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	if n == 0 {
		l.memo[key] = -1
	} else {
		l.memo[key] = n
	}
	return n
}
