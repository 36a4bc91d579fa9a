package lsp

import (
	"testing"

	"github.com/dhamidi/levelspec/config"
	"github.com/dhamidi/levelspec/levelspec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const doc = `# render list
DEV01.RD.0001
  DEV01.RD.00%
dev01.rd
..0002
`

func TestDiagnose(t *testing.T) {
	diagnostics := diagnose(doc, config.Default())
	require.Len(t, diagnostics, 2)

	d := diagnostics[0]
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 2},
		End:   protocol.Position{Line: 2, Character: 14},
	}, d.Range)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Contains(t, d.Message, `"DEV01.RD.00%"`)
	assert.Contains(t, d.Message, "strict")
	assert.Equal(t, protocol.UInteger(3), diagnostics[1].Range.Start.Line)
}

func TestDiagnoseRelaxed(t *testing.T) {
	cfg := config.Default()
	cfg.Case = levelspec.Relaxed
	assert.Len(t, diagnose(doc, cfg), 1)
}

func TestDiagnoseCleanDocument(t *testing.T) {
	diagnostics := diagnose("DEV01\n", config.Default())
	assert.NotNil(t, diagnostics)
	assert.Empty(t, diagnostics)
}

func TestHover(t *testing.T) {
	cfg := config.Default()
	cfg.Context = config.Context{Show: "DEV01", Sequence: "RD"}

	h := hover(doc, 4, cfg)
	require.NotNil(t, h)
	content, ok := h.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Equal(t, "**..0002** (shot)\n\n"+
		"- show: _relative_\n"+
		"- sequence: _relative_\n"+
		"- shot: `0002`\n"+
		"\nresolves to `DEV01.RD.0002`\n", content.Value)

	for _, line := range []int{0, 2, 5, 42} {
		assert.Nil(t, hover(doc, line, cfg), "line %d", line)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"DEV01.%",
			"**DEV01.%** (sequence)\n\n- show: `DEV01`\n- sequence: `%` (any)\n" +
				"\nquery: matches any value at wildcard levels\n",
		},
		{
			"DEV01..",
			"**DEV01..** (shot)\n\n- show: `DEV01`\n- sequence: _relative_\n- shot: _relative_\n" +
				"\nunresolved: resolve sequence: no value for relative level\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := describe(levelspec.MustParse(tt.input), config.Context{})
			assert.Equal(t, tt.want, got)
		})
	}
}

type published struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func testContext(sent *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*sent = append(*sent, published{method, params.(protocol.PublishDiagnosticsParams)})
		},
	}
}

func TestDocumentLifecycle(t *testing.T) {
	var sent []published
	ctx := testContext(&sent)
	ls := NewServer("test", "")
	uri := protocol.DocumentUri("file:///tmp/shots.txt")

	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: doc},
	}))
	require.Len(t, sent, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, sent[0].method)
	assert.Equal(t, uri, sent[0].params.URI)
	assert.Len(t, sent[0].params.Diagnostics, 2)

	require.NoError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "DEV01\n"}},
	}))
	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].params.Diagnostics)

	h, err := ls.textDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, h)

	require.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, sent, 3)
	assert.Empty(t, sent[2].params.Diagnostics)

	h, err = ls.textDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestReloadConfigRediagnoses(t *testing.T) {
	var sent []published
	ctx := testContext(&sent)
	ls := NewServer("test", "")
	uri := protocol.DocumentUri("file:///tmp/shots.txt")

	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "dev01.rd\n"},
	}))
	require.Len(t, sent, 1)
	assert.Len(t, sent[0].params.Diagnostics, 1)

	cfg := config.Default()
	cfg.Case = levelspec.Relaxed
	ls.reloadConfig(cfg)

	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].params.Diagnostics)
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/me/shots.txt", "/home/me/shots.txt"},
		{"file:///home/me/my%20shots.txt", "/home/me/my shots.txt"},
		{"/plain/path", "/plain/path"},
	}
	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
