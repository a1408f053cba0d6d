package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
)

var (
	findThreshold float64
	findType      string
	findLimit     int
	showScores    bool
)

var searchCmd = &cobra.Command{
	Use:   "search <area|category|id> [term]",
	Short: "List entries of one type, filtered by key or name",
	Long: `List all entries of the given type in key order. With a term, only
entries whose key or name contains it (case-insensitive) are shown.

Examples:
  jdex-cli search area
  jdex-cli search id tax
  jdex-cli search category 11`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := ""
		if len(args) == 2 {
			term = args[1]
		}

		search := commands.NewSearchCommand(GetWorkspace(), args[0], term)
		results, err := search.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}
		for _, r := range results {
			printResult(out, r)
		}
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find [query...]",
	Short: "Fuzzy search keys, names and descriptions",
	Long: `Rank every entry against a free-text query. Keys weigh more than names,
and names more than descriptions. A lower threshold is stricter.

Examples:
  jdex-cli find tax returns
  jdex-cli find 11.01
  jdex-cli find --type category --threshold 0.2 insur`,
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold := cfg.FuzzyThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = findThreshold
		}

		find := commands.NewFindCommand(GetWorkspace(), strings.Join(args, " "), threshold)
		find.Type = findType
		find.Limit = findLimit
		matches, err := find.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(matches) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}
		for _, m := range matches {
			if showScores {
				fmt.Fprintf(out, "%.2f ", m.Score)
			}
			printResult(out, m.SearchResult)
		}
		return nil
	},
}

func init() {
	findCmd.Flags().Float64VarP(&findThreshold, "threshold", "t", 0, "match threshold between 0 (exact) and 1 (loose); defaults to the configured value")
	findCmd.Flags().StringVar(&findType, "type", "", "only show entries of this type (area, category, id)")
	findCmd.Flags().IntVarP(&findLimit, "limit", "l", 20, "maximum number of results, 0 for all")
	findCmd.Flags().BoolVar(&showScores, "scores", false, "print the match score before each result")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(findCmd)
}
