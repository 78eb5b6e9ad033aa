// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Raido's backlink tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/raido/internal/backlinks"
)

// Server wraps the MCP server with Raido tools.
type Server struct {
	mcp *server.MCPServer
	svc *backlinks.Service
}

// New creates a new MCP server with all Raido tools registered.
func New(svc *backlinks.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Raido",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_backlinks",
		mcp.WithDescription("Find every place that links to the given note, grouped by "+
			"source file with line/column spans and one-line previews. Both [[wikilinks]] "+
			"and [label](path.md) hyperlinks are found."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Basename of the note to find backlinks for (e.g. note.md)")),
	), s.getBacklinks)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all notes in the vault with their derived titles."),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a Markdown note."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note (e.g. folder/note.md)")),
	), s.readNote)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// backlinkGroup is the JSON shape returned per source file by get_backlinks.
type backlinkGroup struct {
	File string                `json:"file"`
	Hits []backlinks.HitDetail `json:"hits"`
}

func (s *Server) getBacklinks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := req.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tree, err := s.svc.Backlinks(ctx, target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	groups := make([]backlinkGroup, 0, len(tree.Groups))
	for _, g := range tree.Groups {
		hits, hitErr := s.svc.FileHits(ctx, target, g.File)
		if hitErr != nil {
			return mcp.NewToolResultError(hitErr.Error()), nil
		}
		groups = append(groups, backlinkGroup{File: g.File, Hits: hits})
	}

	out, _ := json.MarshalIndent(groups, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.svc.ListNotes(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var lines []string
	for _, it := range items {
		if it.Title != "" {
			lines = append(lines, fmt.Sprintf("%s\t%s", it.Path, it.Title))
		} else {
			lines = append(lines, it.Path)
		}
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.svc.ReadNote(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(note.Content), nil
}
