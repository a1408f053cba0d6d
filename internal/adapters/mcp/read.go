package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/application"
	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

// RegisterReadTools adds all read-only index tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, ws *application.Workspace, threshold float64) {
	s.AddTool(searchTool(), searchHandler(ws))
	s.AddTool(findTool(threshold), findHandler(ws, threshold))
	s.AddTool(showTool(), showHandler(ws))
	s.AddTool(resolvePathTool(), resolvePathHandler(ws))
	s.AddTool(checkTool(), checkHandler(ws))
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("List index entries of one type whose key or name contains a term (case-insensitive). Results are in key order."),
		mcp.WithString("type",
			mcp.Description("Entry type"),
			mcp.Enum(string(domain.EntryTypeArea), string(domain.EntryTypeCategory), string(domain.EntryTypeID)),
			mcp.Required(),
		),
		mcp.WithString("term",
			mcp.Description("Substring to look for. Omit to list every entry of the type."),
		),
	)
}

func searchHandler(ws *application.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchCommand(ws, req.GetString("type", ""), req.GetString("term", ""))
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(results, formatResult)
	}
}

// --- find ---

func findTool(threshold float64) mcp.Tool {
	return mcp.NewTool("find",
		mcp.WithDescription("Fuzzy search across key, name and description of every entry. Best matches first."),
		mcp.WithString("query",
			mcp.Description("Free-text query"),
			mcp.Required(),
		),
		mcp.WithNumber("threshold",
			mcp.Description("Match tolerance between 0 (exact runs only) and 1 (any subsequence)"),
			mcp.Min(0),
			mcp.Max(1),
			mcp.DefaultNumber(threshold),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results"),
			mcp.DefaultNumber(20),
		),
	)
}

func findHandler(ws *application.Workspace, threshold float64) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if strings.TrimSpace(query) == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		cmd := commands.NewFindCommand(ws, query, req.GetFloat("threshold", threshold))
		cmd.Limit = req.GetInt("limit", 20)
		matches, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(matches, func(m domain.FuzzyMatch) string {
			return fmt.Sprintf("%s  %.2f", formatResult(m.SearchResult), m.Score)
		})
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show one entry: type, name, parent, description, folder path and direct children."),
		mcp.WithString("key",
			mcp.Description("JD key (e.g. 10-19, 11, 11.01)"),
			mcp.Required(),
		),
	)
}

func showHandler(ws *application.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		detail, err := commands.NewShowCommand(ws, req.GetString("key", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "key: %s\ntype: %s\nname: %s\n", detail.Key, detail.Type, detail.Name)
		if detail.Parent != "" {
			fmt.Fprintf(&sb, "parent: %s\n", detail.Parent)
		}
		if detail.Description != "" {
			fmt.Fprintf(&sb, "description: %s\n", detail.Description)
		}
		fmt.Fprintf(&sb, "path: %s\n", detail.Path)
		if !detail.Exists {
			sb.WriteString("warning: folder missing on disk\n")
		}
		for _, c := range detail.Children {
			fmt.Fprintf(&sb, "  %s\n", formatResult(c))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- resolve_path ---

func resolvePathTool() mcp.Tool {
	return mcp.NewTool("resolve_path",
		mcp.WithDescription("Get the filesystem path for a JD key."),
		mcp.WithString("key",
			mcp.Description("JD key (e.g. 10-19, 11, 11.01)"),
			mcp.Required(),
		),
	)
}

func resolvePathHandler(ws *application.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := commands.NewResolvePathCommand(ws, req.GetString("key", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(path), nil
	}
}

// --- check ---

func checkTool() mcp.Tool {
	return mcp.NewTool("check",
		mcp.WithDescription("Compare the index with the directory tree and report invalid entries, orphan parents, entries missing on disk and folders missing from the index."),
	)
}

func checkHandler(ws *application.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewCheckCommand(ws).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(FormatCheck(result)), nil
	}
}

// FormatCheck renders a check result as plain text, one finding per line
func FormatCheck(r *domain.CheckResult) string {
	if r.IsConsistent() {
		return "Index is consistent with the directory tree."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d issue(s) found.\n", r.IssueCount())
	for _, e := range r.InvalidEntries {
		fmt.Fprintf(&sb, "invalid  %s  %s\n", e.Key, e.Message)
	}
	for _, o := range r.OrphanParents {
		fmt.Fprintf(&sb, "orphan  %s  parent %s not indexed\n", o.Key, o.Parent)
	}
	for _, key := range r.MissingOnDisk {
		fmt.Fprintf(&sb, "missing-on-disk  %s\n", key)
	}
	for _, m := range r.MissingInIndex {
		fmt.Fprintf(&sb, "missing-in-index  %s  %s (%s)\n", m.Key, m.Name, m.Type)
	}
	return sb.String()
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatResult(r domain.SearchResult) string {
	line := fmt.Sprintf("%s  %s  [%s]", r.Key, r.Name, r.Type)
	if r.Description != "" {
		line += "  " + r.Description
	}
	return line
}
