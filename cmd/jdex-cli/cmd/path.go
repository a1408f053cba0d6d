package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
)

var pathCmd = &cobra.Command{
	Use:   "path <key>",
	Short: "Print the folder path of an entry",
	Long: `Print the absolute folder path of an indexed entry, built from its
chain of parents. Useful in scripts:

  cd "$(jdex-cli path 11.01)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolve := commands.NewResolvePathCommand(GetWorkspace(), args[0])
		path, err := resolve.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show an entry, its folder and its children",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		show := commands.NewShowCommand(GetWorkspace(), args[0])
		detail, err := show.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Key:         %s\n", detail.Key)
		fmt.Fprintf(out, "Type:        %s\n", detail.Type)
		fmt.Fprintf(out, "Name:        %s\n", detail.Name)
		if detail.Parent != "" {
			fmt.Fprintf(out, "Parent:      %s\n", detail.Parent)
		}
		if detail.Description != "" {
			fmt.Fprintf(out, "Description: %s\n", detail.Description)
		}
		status := ""
		if !detail.Exists {
			status = " (missing)"
		}
		fmt.Fprintf(out, "Path:        %s%s\n", detail.Path, status)
		if len(detail.Children) > 0 {
			fmt.Fprintln(out, "Children:")
			for _, c := range detail.Children {
				fmt.Fprintf(out, "  %s %s\n", c.Key, c.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(showCmd)
}
