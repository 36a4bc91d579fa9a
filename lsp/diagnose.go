package lsp

import (
	"fmt"
	"strings"

	"github.com/dhamidi/levelspec/config"
	"github.com/dhamidi/levelspec/levelspec"
	"github.com/dhamidi/levelspec/listfile"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// diagnose reports one error per line of text that does not parse.
func diagnose(text string, cfg *config.Config) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	severity := protocol.DiagnosticSeverityError
	source := lsName

	for _, e := range listfile.Errors(listfile.Parse(text, cfg.Options()...)) {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    entryRange(e),
			Severity: &severity,
			Source:   &source,
			Message:  fmt.Sprintf("%s (case mode %s)", e.Err, cfg.Case),
		})
	}
	return diagnostics
}

// hover describes the levelspec on line (0-based) of text, or returns nil for
// blank, comment and unparsable lines.
func hover(text string, line int, cfg *config.Config) *protocol.Hover {
	e, ok := listfile.At(listfile.Parse(text, cfg.Options()...), line+1)
	if !ok || e.Err != nil {
		return nil
	}
	r := entryRange(e)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: describe(e.Spec, cfg.Resolver()),
		},
		Range: &r,
	}
}

func describe(ls levelspec.LevelSpec, r levelspec.Resolver) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** (%s)\n\n", ls, ls.Depth())
	for i, tok := range ls.Tokens() {
		fmt.Fprintf(&sb, "- %s: %s\n", levelspec.Levels[i], describeToken(tok))
	}

	if !ls.IsConcrete() {
		sb.WriteString("\nquery: matches any value at wildcard levels\n")
	}
	if !ls.IsAbsolute() {
		abs, err := ls.RelToAbs(r)
		if err != nil {
			fmt.Fprintf(&sb, "\nunresolved: %s\n", err)
		} else {
			fmt.Fprintf(&sb, "\nresolves to `%s`\n", abs)
		}
	}
	return sb.String()
}

func describeToken(tok levelspec.Token) string {
	switch tok.Kind() {
	case levelspec.Relative:
		return "_relative_"
	case levelspec.Wildcard:
		return "`%` (any)"
	default:
		return "`" + tok.String() + "`"
	}
}

func entryRange(e listfile.Entry) protocol.Range {
	line := protocol.UInteger(e.Line - 1)
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: protocol.UInteger(e.Column)},
		End:   protocol.Position{Line: line, Character: protocol.UInteger(e.End())},
	}
}
