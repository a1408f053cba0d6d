package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
)

var describeCmd = &cobra.Command{
	Use:   "describe <key> [description...]",
	Short: "Attach a description to an entry",
	Long: `Set the free-text description of an indexed entry. The description
survives rebuilds for as long as the folder exists. Omit the description
to clear it.

Examples:
  jdex-cli describe 11.01 "Scanned returns 2019-2024"
  jdex-cli describe 11.01`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		describe := commands.NewDescribeCommand(GetWorkspace(), args[0], strings.Join(args[1:], " "))
		result, err := describe.Execute(context.Background())
		if err != nil {
			return err
		}

		if result.Cleared {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared description of %s\n", result.Key)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Described %s: %s\n", result.Key, result.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
