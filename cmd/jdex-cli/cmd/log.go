package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent index changes",
	Long: `List the most recent rebuilds and description edits recorded in the
journal, newest first.

Examples:
  jdex-cli log
  jdex-cli log -n 50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := commands.NewLogCommand(GetWorkspace().Journal, logLimit).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes recorded")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, e := range events {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.At.Local().Format(time.DateTime), e.Kind, eventSummary(e), e.Root)
		}
		return tw.Flush()
	},
}

func eventSummary(e domain.JournalEvent) string {
	if e.Kind == domain.EventDescribe {
		return e.Key
	}
	return fmt.Sprintf("%d entries (+%d -%d ~%d)", e.Entries, e.Added, e.Removed, e.Changed)
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "number of events to show")
	rootCmd.AddCommand(logCmd)
}
