// Package lsp serves diagnostics and hovers for levelspec list files over the
// Language Server Protocol.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/levelspec/config"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "levelspec"

var log = commonlog.GetLogger("levelspec.lsp")

// Server is a levelspec language server.
type Server struct {
	handler    protocol.Handler
	server     *server.Server
	version    string
	configPath string

	mu      sync.Mutex
	cfg     *config.Config
	docs    map[protocol.DocumentUri]string
	notify  glsp.NotifyFunc
	watcher *config.Watcher
}

// NewServer returns a server that reads its settings from configPath. A
// relative configPath is resolved against the workspace root.
func NewServer(version, configPath string) *Server {
	ls := &Server{
		version:    version,
		configPath: configPath,
		cfg:        config.Default(),
		docs:       make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}
	if ls.configPath != "" && !filepath.IsAbs(ls.configPath) {
		ls.configPath = filepath.Join(rootDir, ls.configPath)
	}

	cfg, err := config.Load(ls.configPath)
	if err != nil {
		log.Warningf("using default config: %s", err)
		cfg = config.Default()
	}

	ls.mu.Lock()
	ls.cfg = cfg
	ls.notify = ctx.Notify
	ls.mu.Unlock()

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	w, err := config.Watch(ls.configPath, ls.reloadConfig)
	if err != nil {
		log.Warningf("not watching %s: %s", ls.configPath, err)
		return nil
	}
	ls.mu.Lock()
	ls.watcher = w
	ls.mu.Unlock()
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	ls.mu.Lock()
	w := ls.watcher
	ls.watcher = nil
	ls.mu.Unlock()

	if w != nil {
		return w.Close()
	}
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// reloadConfig swaps in cfg and re-diagnoses every open document.
func (ls *Server) reloadConfig(cfg *config.Config) {
	ls.mu.Lock()
	ls.cfg = cfg
	uris := make([]protocol.DocumentUri, 0, len(ls.docs))
	for uri := range ls.docs {
		uris = append(uris, uri)
	}
	ls.mu.Unlock()

	log.Infof("case mode is now %s", cfg.Case)
	for _, uri := range uris {
		ls.publish(uri)
	}
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI

	ls.mu.Lock()
	delete(ls.docs, uri)
	ls.mu.Unlock()

	// Clear what was published for the closed document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	ls.mu.Lock()
	text, ok := ls.docs[params.TextDocument.URI]
	cfg := ls.cfg
	ls.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return hover(text, int(params.Position.Line), cfg), nil
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	if ls.notify == nil {
		ls.notify = ctx.Notify
	}
	ls.mu.Unlock()

	ls.publish(uri)
}

// publish sends the diagnostics for the stored text of uri.
func (ls *Server) publish(uri protocol.DocumentUri) {
	ls.mu.Lock()
	text, ok := ls.docs[uri]
	cfg := ls.cfg
	notify := ls.notify
	ls.mu.Unlock()
	if !ok || notify == nil {
		return
	}

	diagnostics := diagnose(text, cfg)
	log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
