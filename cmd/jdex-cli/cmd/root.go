package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"jdex/internal/application"
	"jdex/internal/bootstrap"
	"jdex/internal/config"
)

var (
	rootPath   string
	indexPath  string
	configPath string
	verbose    bool
	noJournal  bool

	cfg    *config.Config
	ws     *application.Workspace
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jdex-cli",
	Short: "Maintain a JSON index of a Johnny.Decimal folder tree",
	Long: `jdex-cli builds and queries a JSON index of a directory tree organized
with the Johnny.Decimal system (areas 10-19, categories 11, IDs 11.01).

The index lives at <root>/.jdex.json by default. Rebuilding keeps the
descriptions you have attached to entries.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger = bootstrap.NewLogger(os.Stderr, verbose)
		slog.SetDefault(logger)

		var err error
		cfg, err = config.Load(configPath, config.Overrides{Root: rootPath, IndexPath: indexPath})
		if err != nil {
			return err
		}
		if noJournal {
			cfg.NoJournal = true
		}

		ws = bootstrap.OpenWorkspace(cfg, logger)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if cerr := bootstrap.Close(ws); cerr != nil && logger != nil {
		logger.Warn("failed to close journal", "error", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Johnny.Decimal root folder (default "+config.DefaultRoot+")")
	rootCmd.PersistentFlags().StringVarP(&indexPath, "index", "i", "", "index file (default <root>/"+config.DefaultIndexName+")")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "do not record changes in the journal")
}

// GetWorkspace returns the initialized workspace
func GetWorkspace() *application.Workspace {
	return ws
}
