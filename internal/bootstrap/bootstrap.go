// Package bootstrap wires configuration to the concrete adapters shared by
// the jdex binaries.
package bootstrap

import (
	"io"
	"log/slog"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	"jdex/internal/adapters/sqlite"
	"jdex/internal/application"
	"jdex/internal/config"
)

// NewLogger returns a text logger on w at Info, or Debug when verbose
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenWorkspace builds a workspace from cfg. A journal that cannot be
// opened is logged and left out rather than failing the command.
func OpenWorkspace(cfg *config.Config, logger *slog.Logger) *application.Workspace {
	if logger == nil {
		logger = slog.Default()
	}

	ws := &application.Workspace{
		Root:      cfg.Root,
		IndexPath: cfg.IndexPath,
		Store:     jsonstore.NewStore(logger),
		Scanner:   filesystem.NewScanner(logger),
		Logger:    logger,
	}

	if cfg.NoJournal {
		return ws
	}
	journal := sqlite.NewJournal()
	if err := journal.Open(cfg.JournalPath); err != nil {
		logger.Warn("journal disabled", "path", cfg.JournalPath, "error", err)
		return ws
	}
	logger.Debug("journal opened", "path", journal.Path())
	ws.Journal = journal
	return ws
}

// Close releases resources held by the workspace
func Close(ws *application.Workspace) error {
	if ws == nil || ws.Journal == nil {
		return nil
	}
	return ws.Journal.Close()
}
