package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

var treeDescriptions bool

var treeCmd = &cobra.Command{
	Use:   "tree [key]",
	Short: "Display the indexed hierarchy",
	Long: `Display the index as a tree, starting at the root folder or at the
given key. Entries whose parent is not indexed are shown at the top level.

Examples:
  jdex-cli tree
  jdex-cli tree 10-19 --descriptions`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := GetWorkspace()
		index, err := commands.LoadIndex(ws)
		if err != nil {
			return err
		}

		var tree gotree.Tree
		seen := make(map[string]bool)
		if len(args) == 1 {
			detail, err := commands.Show(ws.Scanner, ws.Root, index, args[0])
			if err != nil {
				return err
			}
			tree = gotree.New(treeLabel(detail.SearchResult))
			seen[detail.Key] = true
			addChildren(tree, index, detail.Key, seen)
		} else {
			tree = gotree.New(filepath.Base(ws.Root))
			for _, r := range domain.Roots(index) {
				seen[r.Key] = true
				addChildren(tree.Add(treeLabel(r)), index, r.Key, seen)
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), tree.Print())
		return nil
	},
}

func addChildren(node gotree.Tree, index domain.Index, key string, seen map[string]bool) {
	for _, child := range domain.Children(index, key) {
		if seen[child.Key] {
			continue
		}
		seen[child.Key] = true
		addChildren(node.Add(treeLabel(child)), index, child.Key, seen)
	}
}

func treeLabel(r domain.SearchResult) string {
	label := domain.FormatFolderName(r.Key, r.Name)
	if treeDescriptions && r.Description != "" {
		label += " - " + r.Description
	}
	return label
}

func init() {
	treeCmd.Flags().BoolVarP(&treeDescriptions, "descriptions", "d", false, "append descriptions to entries")
	rootCmd.AddCommand(treeCmd)
}
