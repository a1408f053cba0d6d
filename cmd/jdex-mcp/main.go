package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "jdex/internal/adapters/mcp"
	"jdex/internal/bootstrap"
	"jdex/internal/config"
)

func main() {
	rootFlag := flag.String("root", "", "Johnny.Decimal root folder")
	indexFlag := flag.String("index", "", "index file (default <root>/"+config.DefaultIndexName+")")
	configFlag := flag.String("config", "", "config file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	// stdout carries the protocol
	logger := bootstrap.NewLogger(os.Stderr, *verbose)
	slog.SetDefault(logger)

	cfg, err := config.Load(*configFlag, config.Overrides{Root: *rootFlag, IndexPath: *indexFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "jdex-mcp: %v\n", err)
		os.Exit(1)
	}

	ws := bootstrap.OpenWorkspace(cfg, logger)
	defer bootstrap.Close(ws)

	mcpServer := server.NewMCPServer(
		"jdex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, ws, cfg.FuzzyThreshold)
	mcpadapter.RegisterWriteTools(mcpServer, ws)

	logger.Info("serving", "root", cfg.Root, "index", cfg.IndexPath)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
		bootstrap.Close(ws)
		os.Exit(1)
	}
}
