package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare the index with the folder tree",
	Long: `Validate the index file and report drift against the folder tree:

  invalid            entries that are structurally malformed
  orphan             entries whose parent key is not indexed
  missing-on-disk    entries whose folder no longer exists
  missing-in-index   Johnny.Decimal folders that are not indexed

Exits with a non-zero status when any issue is found.

Examples:
  jdex-cli check
  jdex-cli check --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		check := commands.NewCheckCommand(GetWorkspace())
		result, err := check.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if checkJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
		} else {
			printCheck(out, result)
		}

		if !result.IsConsistent() {
			return fmt.Errorf("index has %d issue(s)", result.IssueCount())
		}
		return nil
	},
}

func printCheck(w io.Writer, r *domain.CheckResult) {
	if r.IsConsistent() {
		fmt.Fprintln(w, "Index is consistent with the folder tree")
		return
	}
	for _, e := range r.InvalidEntries {
		fmt.Fprintf(w, "invalid           %-10s %s\n", e.Key, e.Message)
	}
	for _, o := range r.OrphanParents {
		fmt.Fprintf(w, "orphan            %-10s parent %s is not indexed\n", o.Key, o.Parent)
	}
	for _, key := range r.MissingOnDisk {
		fmt.Fprintf(w, "missing-on-disk   %s\n", key)
	}
	for _, m := range r.MissingInIndex {
		fmt.Fprintf(w, "missing-in-index  %-10s %s (%s)\n", m.Key, m.Name, m.Type)
	}
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(checkCmd)
}
