package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"jdex/internal/adapters/editor"
	"jdex/internal/application/commands"
)

var openCmd = &cobra.Command{
	Use:   "open [key]",
	Short: "Open the index file, or an entry's folder, in your editor",
	Long: `Open the index file in $JDEX_EDITOR, $VISUAL or $EDITOR. With a key,
open that entry's folder instead.

Examples:
  jdex-cli open
  EDITOR=code jdex-cli open 11.01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := GetWorkspace().IndexPath
		if len(args) == 1 {
			path, err := commands.NewResolvePathCommand(GetWorkspace(), args[0]).Execute(context.Background())
			if err != nil {
				return err
			}
			target = path
		}

		logger.Debug("opening editor", "path", target)
		return editor.NewOpener().Open(target)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
