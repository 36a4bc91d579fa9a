package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/levelspec/ebnflex"
	"github.com/dhamidi/levelspec/grammar"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newLexCmd() *cobra.Command {
	var grammarFile string

	cmd := &cobra.Command{
		Use:   "lex <spec>",
		Short: "Print the grammar tokens of a levelspec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(grammarFile)
			if err != nil {
				return err
			}
			return runLex(cmd.OutOrStdout(), g, args[0])
		},
	}

	cmd.Flags().StringVar(&grammarFile, "grammar", "", "EBNF grammar file (default: built-in levelspec grammar)")

	return cmd
}

// runLex prints one token per line followed by whether the token stream
// derives from the start production.
func runLex(w io.Writer, g ebnf.Grammar, input string) error {
	tokens, err := grammar.Lex(g, input)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintln(w, tok)
	}

	ok, err := grammar.Match(g, grammar.Start, grammar.TokenKinds, tokens)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(w, "%s: accepted\n", grammar.Start)
	} else {
		fmt.Fprintf(w, "%s: rejected\n", grammar.Start)
	}
	return nil
}

func loadGrammar(filename string) (ebnf.Grammar, error) {
	if filename == "" {
		return grammar.Load()
	}
	return ebnflex.LoadGrammarFile(filename)
}
