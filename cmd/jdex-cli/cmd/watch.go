package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/application/commands"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the index whenever the folder tree changes",
	Long: `Rebuild once, then watch the root and its area and category folders.
Bursts of changes are coalesced into a single rebuild. Stop with Ctrl+C.

Example:
  jdex-cli watch --debounce 2s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := GetWorkspace()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rebuild := func(ctx context.Context) error {
			result, err := commands.NewRebuildCommand(ws, false).Execute(ctx)
			if err != nil {
				return err
			}
			if !result.Diff.Empty() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s rebuilt: %d entries (+%d -%d ~%d)\n",
					time.Now().Format(time.TimeOnly), len(result.File.Entries),
					len(result.Diff.Added), len(result.Diff.Removed), len(result.Diff.Changed))
			}
			return nil
		}

		if err := rebuild(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", ws.Root)

		watcher := filesystem.NewWatcher(ws.Root, ws.IndexPath, ws.Scanner, watchDebounce, logger)
		return watcher.Run(ctx, rebuild)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", filesystem.DefaultDebounce, "quiet period before rebuilding")
	rootCmd.AddCommand(watchCmd)
}
