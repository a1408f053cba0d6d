package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jdex/internal/adapters/jsonstore"
	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

var rebuildDryRun bool

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Regenerate the index from the folder tree",
	Long: `Scan the Johnny.Decimal tree under the root folder and write a fresh index.

Descriptions of entries that still exist are kept, and so is the original
creation time. An index file in the older bare-map shape is upgraded.
An index that cannot be parsed is left untouched and the rebuild fails.

Examples:
  jdex-cli rebuild
  jdex-cli rebuild --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rebuild := commands.NewRebuildCommand(GetWorkspace(), rebuildDryRun)
		result, err := rebuild.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if rebuildDryRun {
			if result.Previous != nil && !result.Legacy && result.Diff.Empty() {
				fmt.Fprintln(out, "Index is up to date")
				return nil
			}
			diff, err := dryRunDiff(result.File)
			if err != nil {
				return err
			}
			if diff == "" {
				fmt.Fprintln(out, "Index is up to date")
				return nil
			}
			fmt.Fprint(out, diff)
			return nil
		}

		if result.Legacy {
			fmt.Fprintln(out, "Upgraded legacy index format")
		}
		fmt.Fprintf(out, "Rebuilt %s: %d entries (+%d -%d ~%d)\n",
			GetWorkspace().IndexPath, len(result.File.Entries),
			len(result.Diff.Added), len(result.Diff.Removed), len(result.Diff.Changed))
		printKeys(out, "+", result.Diff.Added, result.File.Entries)
		printKeys(out, "~", result.Diff.Changed, result.File.Entries)
		printKeys(out, "-", result.Diff.Removed, nil)
		return nil
	},
}

// dryRunDiff diffs the file on disk against what rebuild would write
func dryRunDiff(next *domain.IndexFile) (string, error) {
	path := GetWorkspace().IndexPath
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read index: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	rendered := *next
	if rendered.Created.IsZero() {
		rendered.Created = now
	}
	rendered.Updated = now

	return jsonstore.Diff(current, &rendered, path, path+" (rebuilt)")
}

func init() {
	rebuildCmd.Flags().BoolVarP(&rebuildDryRun, "dry-run", "n", false, "show the changes as a unified diff without writing")
	rootCmd.AddCommand(rebuildCmd)
}
