package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/editor"
	"jdex/internal/adapters/tui"
	"jdex/internal/bootstrap"
	"jdex/internal/config"
)

func main() {
	rootFlag := flag.String("root", "", "Johnny.Decimal root folder")
	indexFlag := flag.String("index", "", "index file (default <root>/"+config.DefaultIndexName+")")
	configFlag := flag.String("config", "", "config file")
	logFlag := flag.String("log", "", "write logs to this file")
	flag.Parse()

	// stderr belongs to the terminal UI
	var logOut io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := bootstrap.NewLogger(logOut, true)
	slog.SetDefault(logger)

	cfg, err := config.Load(*configFlag, config.Overrides{Root: *rootFlag, IndexPath: *indexFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ws := bootstrap.OpenWorkspace(cfg, logger)
	defer bootstrap.Close(ws)

	app := tui.NewApp(ws, editor.NewOpener(), cfg.FuzzyThreshold)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		bootstrap.Close(ws)
		os.Exit(1)
	}
}
