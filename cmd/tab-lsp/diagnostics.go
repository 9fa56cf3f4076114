package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/PedroHenriqueFerreira/TableauxSolver/tabfile"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	issues  []tabfile.Issue
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		issues:  tabfile.Lint([]byte(content)),
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
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.issues))
	for _, issue := range doc.issues {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(issue.Line), Character: uint32(issue.Col)},
				End:   protocol.Position{Line: uint32(issue.Line), Character: uint32(issue.Col + 1)},
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  issue.Msg,
		})
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}
