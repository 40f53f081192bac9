package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List the managed documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		docs, err := commands.NewListDocumentsCommand(s).Execute(ctx)
		if err != nil {
			return err
		}
		for _, d := range docs {
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s %-8s %4d  %s\n", d.Name, d.Layout, d.Entries, d.RelPath)
		}
		return nil
	},
}

var listFilter string

var listCmd = &cobra.Command{
	Use:   "list <document>",
	Short: "List the entries of a document",
	Long: `List the entries of a document with their paths.

Grouped documents label entries "group:key"; nested documents list every
record by its slash path.

Examples:
  contentmgr-cli list Classes
  contentmgr-cli list Weapons --filter bow`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}
		spec, err := s.Spec(args[0])
		if err != nil {
			return err
		}
		doc, err := s.Document(args[0])
		if err != nil {
			return err
		}

		for _, e := range domain.FilterIndex(domain.BuildIndex(spec.Layout, doc), listFilter) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Label, e.Path)
		}
		return nil
	},
}

var treeFilter string

var treeCmd = &cobra.Command{
	Use:   "tree <document>",
	Short: "Print a document as a tree",
	Long: `Print a document's branches and records as an indented tree.
Records are marked with *. With --filter only branches leading to matching
keys are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		root, err := commands.NewBuildTreeCommand(s, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if treeFilter == "" {
			expandAll(root)
		} else if len(domain.MatchTree(root, treeFilter)) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
			return nil
		}

		for _, row := range root.Flatten() {
			marker := ""
			if row.Leaf {
				marker = " *"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s%s\n", strings.Repeat("  ", row.Depth()), row.Key, marker)
		}
		return nil
	},
}

func expandAll(item *domain.TreeItem) {
	item.Expand()
	for _, c := range item.Children {
		expandAll(c)
	}
}

func init() {
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(treeCmd)

	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "case-insensitive substring filter")
	treeCmd.Flags().StringVarP(&treeFilter, "filter", "f", "", "only show branches leading to matching keys")
}
