// Package grammar holds the EBNF description of levelspec notation and checks
// token streams against it.
//
// The grammar is context free, so it accepts a superset of what the
// levelspec package parses: it admits alphanumeric shots under any sequence
// and letters of either case.
package grammar

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/dhamidi/levelspec/ebnflex"
	"golang.org/x/exp/ebnf"
)

// Start is the production a levelspec derives from.
const Start = "Levelspec"

// TokenKinds are the token productions in lexing order.
var TokenKinds = []string{"Name", "Digits", "Dot", "Wildcard"}

//go:embed levelspec.ebnf
var Source string

// Load parses the built-in grammar.
func Load() (ebnf.Grammar, error) {
	return ebnflex.LoadGrammar("levelspec.ebnf", strings.NewReader(Source))
}

// Verify checks that g is well formed and that every production is reachable
// from start.
func Verify(g ebnf.Grammar, start string) error {
	if err := ebnf.Verify(g, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Lex splits input into levelspec tokens. The final token is EOF.
func Lex(g ebnf.Grammar, input string) ([]ebnflex.Token, error) {
	l, err := ebnflex.NewLexer(g, TokenKinds, input)
	if err != nil {
		return nil, err
	}
	return l.Tokenize(), nil
}

// Accepts reports whether input lexes cleanly and derives from Start.
func Accepts(g ebnf.Grammar, input string) (bool, error) {
	tokens, err := Lex(g, input)
	if err != nil {
		return false, err
	}
	return Match(g, Start, TokenKinds, tokens)
}

// Match reports whether tokens, up to EOF, derive from the production start.
// A production whose name is in kinds matches exactly one token of that kind.
func Match(g ebnf.Grammar, start string, kinds []string, tokens []ebnflex.Token) (bool, error) {
	prod, ok := g[start]
	if !ok || prod.Expr == nil {
		return false, fmt.Errorf("production %q not found in grammar", start)
	}

	n := len(tokens)
	if i := slices.IndexFunc(tokens, func(tok ebnflex.Token) bool { return tok.Kind == ebnflex.EOF }); i >= 0 {
		n = i
	}
	for _, tok := range tokens[:n] {
		if tok.Kind == ebnflex.Error {
			return false, nil
		}
	}

	m := &matcher{grammar: g, kinds: kinds, tokens: tokens[:n], active: make(map[activeKey]bool)}
	return slices.Contains(m.match(prod.Expr, []int{0}), n), nil
}

type activeKey struct {
	name string
	pos  int
}

// matcher runs every derivation in parallel: each step maps the set of token
// positions reached so far to the set reachable after expr.
type matcher struct {
	grammar ebnf.Grammar
	kinds   []string
	tokens  []ebnflex.Token
	active  map[activeKey]bool
}

func (m *matcher) match(expr ebnf.Expression, from []int) []int {
	var out []int
	for _, pos := range from {
		out = union(out, m.matchAt(expr, pos))
	}
	return out
}

func (m *matcher) matchAt(expr ebnf.Expression, pos int) []int {
	switch e := expr.(type) {
	case nil:
		return []int{pos}

	case *ebnf.Token:
		if pos < len(m.tokens) && m.tokens[pos].Literal == e.String {
			return []int{pos + 1}
		}
		return nil

	case *ebnf.Name:
		if slices.Contains(m.kinds, e.String) {
			if pos < len(m.tokens) && m.tokens[pos].Kind == e.String {
				return []int{pos + 1}
			}
			return nil
		}
		prod, ok := m.grammar[e.String]
		key := activeKey{e.String, pos}
		if !ok || m.active[key] {
			return nil
		}
		m.active[key] = true
		defer delete(m.active, key)
		return m.matchAt(prod.Expr, pos)

	case ebnf.Sequence:
		reached := []int{pos}
		for _, item := range e {
			reached = m.match(item, reached)
			if len(reached) == 0 {
				return nil
			}
		}
		return reached

	case ebnf.Alternative:
		var out []int
		for _, alt := range e {
			out = union(out, m.matchAt(alt, pos))
		}
		return out

	case *ebnf.Option:
		return union([]int{pos}, m.matchAt(e.Body, pos))

	case *ebnf.Repetition:
		out := []int{pos}
		frontier := []int{pos}
		for len(frontier) > 0 {
			var next []int
			for _, p := range m.match(e.Body, frontier) {
				if !slices.Contains(out, p) {
					next = append(next, p)
				}
			}
			out = union(out, next)
			frontier = next
		}
		return out

	case *ebnf.Group:
		return m.matchAt(e.Body, pos)

	default:
		// Ranges only occur in lexical productions, which the lexer handles.
		return nil
	}
}

func union(a, b []int) []int {
	for _, p := range b {
		if !slices.Contains(a, p) {
			a = append(a, p)
		}
	}
	return a
}
