package main

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/deccan-format/toon/debug"
	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/parse"
	"github.com/deccan-format/toon/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]token.Pos
	parseErr  error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	positions := make(map[*ir.Node]token.Pos)
	node, err := parse.Parse([]byte(content), parse.Positions(positions))
	if debug.LSP() {
		debug.Logf("put %s version %d: err=%v\n", uri, version, err)
	}
	if err != nil {
		// keep the content so edits still apply, but no tree
		ds.docs[uri] = &document{
			uri:      uri,
			content:  content,
			version:  version,
			parseErr: err,
		}
		return
	}

	ds.docs[uri] = &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		positions: positions,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.parseErr != nil {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 0},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.parseErr.Error(),
			Source:   "toon",
		}

		// decode errors carry a 1-based line number
		var derr *parse.DecodeError
		if errors.As(doc.parseErr, &derr) && derr.Line > 0 {
			line := uint32(derr.Line - 1)
			diagnostic.Range = protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   protocol.Position{Line: line + 1, Character: 0},
			}
		}

		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange applies one incremental content change. The server advertises
// incremental sync, so every event carries a range; go.lsp.dev decodes an
// omitted range as the zero Range, which is the same shape as a zero-length
// insertion at 0:0, and the insertion reading wins.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	start := offsetAt(content, change.Range.Start)
	end := offsetAt(content, change.Range.End)
	if start > end || end > len(content) {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

// offsetAt converts a protocol position to a byte offset into content.
// Columns count UTF-16 code units, per the LSP spec.
func offsetAt(content string, pos protocol.Position) int {
	offset := 0
	for line := int(pos.Line); line > 0 && offset < len(content); offset++ {
		if content[offset] == '\n' {
			line--
		}
	}
	for units := int(pos.Character); units > 0 && offset < len(content); {
		r, size := utf8.DecodeRuneInString(content[offset:])
		if r == '\n' {
			break
		}
		units--
		if r > 0xFFFF {
			units-- // astral runes are a surrogate pair
		}
		offset += size
	}
	return offset
}
