package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/raido/internal/backlinks"
	"github.com/starford/raido/internal/testutil"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir, store := testutil.TestVault(t)
	svc := backlinks.NewService(store, testutil.QuietLogger())
	return New(svc), dir
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so the handler
	// functions are invoked directly.
	var result *mcp.CallToolResult
	var err error
	switch name {
	case "get_backlinks":
		result, err = srv.getBacklinks(ctx, req)
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}
	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestGetBacklinksTool(t *testing.T) {
	srv, dir := testServer(t)
	testutil.WriteNote(t, dir, "a.md", "links to [[b]]")
	testutil.WriteNote(t, dir, "b.md", "target")

	r := callTool(t, srv, "get_backlinks", map[string]any{"target": "b.md"})
	text := resultText(r)
	if !strings.Contains(text, `"file": "a.md"`) {
		t.Errorf("backlinks = %q, want a.md group", text)
	}
	if !strings.Contains(text, `"preview"`) {
		t.Errorf("backlinks = %q, want previews", text)
	}
}

func TestGetBacklinksTool_NoHits(t *testing.T) {
	srv, dir := testServer(t)
	testutil.WriteNote(t, dir, "a.md", "nothing here")

	r := callTool(t, srv, "get_backlinks", map[string]any{"target": "b.md"})
	if text := resultText(r); strings.TrimSpace(text) != "[]" {
		t.Errorf("backlinks = %q, want empty list", text)
	}
}

func TestListNotesTool(t *testing.T) {
	srv, dir := testServer(t)
	testutil.WriteNote(t, dir, "a.md", "# Alpha\n")
	testutil.WriteNote(t, dir, "b.md", "plain")

	text := resultText(callTool(t, srv, "list_notes", map[string]any{}))
	if !strings.Contains(text, "a.md\tAlpha") || !strings.Contains(text, "b.md") {
		t.Errorf("list = %q", text)
	}
}

func TestReadNoteTool(t *testing.T) {
	srv, dir := testServer(t)
	testutil.WriteNote(t, dir, "a.md", "# A\nbody")

	text := resultText(callTool(t, srv, "read_note", map[string]any{"path": "a.md"}))
	if text != "# A\nbody" {
		t.Errorf("read = %q", text)
	}
}

func TestReadNoteTool_Missing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_note", map[string]any{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing note")
	}
}
