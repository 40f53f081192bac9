package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"contentmgr/internal/application/commands"
)

var searchDocument string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search entries across documents",
	Long: `Search entry keys and display names across documents. Queries need at
least two characters; results are ranked best first.

Examples:
  contentmgr-cli search fire
  contentmgr-cli search bow --document Weapons`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		hits, err := commands.NewSearchCommand(s, searchDocument, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
			return nil
		}
		for _, h := range hits {
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s %-30s %s\n", h.Document, h.Path, h.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchDocument, "document", "d", "", "restrict the search to one document")
}
