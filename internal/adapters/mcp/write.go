package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/application"
	"jdex/internal/application/commands"
)

// RegisterWriteTools adds the tools that rewrite the index file.
func RegisterWriteTools(s *server.MCPServer, ws *application.Workspace) {
	s.AddTool(rebuildTool(), rebuildHandler(ws))
	s.AddTool(describeTool(), describeHandler(ws))
}

// --- rebuild ---

func rebuildTool() mcp.Tool {
	return mcp.NewTool("rebuild",
		mcp.WithDescription("Regenerate the index from the directory tree. Descriptions of surviving keys are kept."),
		mcp.WithBoolean("dry_run",
			mcp.Description("Compute the changes without writing the index"),
		),
	)
}

func rebuildHandler(ws *application.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRebuildCommand(ws, req.GetBool("dry_run", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		verb := "Rebuilt"
		if !result.Written {
			verb = "Would rebuild"
		}
		fmt.Fprintf(&sb, "%s index with %d entries.\n", verb, len(result.File.Entries))
		writeKeys(&sb, "added", result.Diff.Added)
		writeKeys(&sb, "removed", result.Diff.Removed)
		writeKeys(&sb, "changed", result.Diff.Changed)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func writeKeys(sb *strings.Builder, label string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, strings.Join(keys, ", "))
}

// --- describe ---

func describeTool() mcp.Tool {
	return mcp.NewTool("describe",
		mcp.WithDescription("Set the description of an indexed entry. An empty description removes it."),
		mcp.WithString("key",
			mcp.Description("JD key (e.g. 11.01)"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("New description text"),
		),
	)
}

func describeHandler(ws *application.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDescribeCommand(ws, req.GetString("key", ""), req.GetString("description", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Cleared {
			return mcp.NewToolResultText(fmt.Sprintf("Cleared description of %s", result.Key)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Described %s: %s", result.Key, result.Description)), nil
	}
}
