package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	"jdex/internal/application"
	"jdex/internal/domain"
)

func testWorkspace(t *testing.T) *application.Workspace {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "10-19 Finance", "11 Tax", "11.01 Returns"), 0755); err != nil {
		t.Fatal(err)
	}
	return &application.Workspace{
		Root:      root,
		IndexPath: filepath.Join(root, ".jdex.json"),
		Store:     jsonstore.NewStore(nil),
		Scanner:   filesystem.NewScanner(nil),
	}
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestTools_RebuildThenQuery(t *testing.T) {
	ws := testWorkspace(t)

	out, isErr := call(t, rebuildHandler(ws), map[string]any{"dry_run": true})
	if isErr || !strings.Contains(out, "Would rebuild index with 3 entries") {
		t.Fatalf("unexpected dry run output %q", out)
	}

	out, isErr = call(t, rebuildHandler(ws), nil)
	if isErr || !strings.Contains(out, "added: 10-19, 11, 11.01") {
		t.Fatalf("unexpected rebuild output %q", out)
	}

	out, isErr = call(t, describeHandler(ws), map[string]any{"key": "11.01", "description": "filed"})
	if isErr || !strings.Contains(out, "Described 11.01") {
		t.Errorf("unexpected describe output %q", out)
	}

	out, _ = call(t, searchHandler(ws), map[string]any{"type": "id"})
	if !strings.Contains(out, "11.01  Returns  [id]  filed") {
		t.Errorf("unexpected search output %q", out)
	}

	out, _ = call(t, findHandler(ws, domain.DefaultFuzzyThreshold), map[string]any{"query": "tax"})
	if !strings.HasPrefix(out, "11  Tax") {
		t.Errorf("expected Tax first, got %q", out)
	}

	out, _ = call(t, resolvePathHandler(ws), map[string]any{"key": "11.01"})
	if out != filepath.Join(ws.Root, "10-19 Finance", "11 Tax", "11.01 Returns") {
		t.Errorf("unexpected path %q", out)
	}

	out, _ = call(t, showHandler(ws), map[string]any{"key": "11"})
	if !strings.Contains(out, "parent: 10-19") || !strings.Contains(out, "11.01  Returns") {
		t.Errorf("unexpected show output %q", out)
	}

	out, _ = call(t, checkHandler(ws), nil)
	if !strings.Contains(out, "consistent") {
		t.Errorf("expected consistent index, got %q", out)
	}
}

func TestTools_Errors(t *testing.T) {
	ws := testWorkspace(t)

	if _, isErr := call(t, searchHandler(ws), map[string]any{"type": "id"}); !isErr {
		t.Error("expected error before any index exists")
	}
	if _, isErr := call(t, findHandler(ws, 0.4), map[string]any{"query": " "}); !isErr {
		t.Error("expected error for empty query")
	}
	if _, isErr := call(t, describeHandler(ws), map[string]any{"key": "nope"}); !isErr {
		t.Error("expected error for invalid key")
	}
}

func TestFormatCheck(t *testing.T) {
	r := &domain.CheckResult{
		OrphanParents:  []domain.OrphanParent{{Key: "12.01", Parent: "12"}},
		MissingInIndex: []domain.MissingFolder{{Key: "21", Name: "Doctors", Type: domain.EntryTypeCategory}},
	}
	out := FormatCheck(r)
	if !strings.Contains(out, "2 issue(s)") || !strings.Contains(out, "orphan  12.01") || !strings.Contains(out, "missing-in-index  21  Doctors (category)") {
		t.Errorf("unexpected output %q", out)
	}
}
