package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

var queryDocument string

var queryCmd = &cobra.Command{
	Use:   "query <expression>",
	Short: "Evaluate a JSONPath expression",
	Long: `Evaluate a JSONPath expression and print the selected values as JSON.
With --document the root is that document; without it the root maps
document names to documents.

Examples:
  contentmgr-cli query '$.skills.*.power' --document Skills
  contentmgr-cli query '$.Weapons..rarity'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		res, err := commands.NewQueryCommand(s, queryDocument, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res.Values)
	},
}

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <document> [path]",
	Short: "Export a document or entry as JSON or YAML",
	Long: `Serialize a document, or the subtree at path, keeping key order.

Examples:
  contentmgr-cli export Skills --format yaml
  contentmgr-cli export Weapons melee/one_hand -o one_hand.json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		var path domain.Path
		if len(args) == 2 {
			path = domain.ParsePath(args[1])
		}
		res, err := commands.NewExportCommand(s, args[0], path, exportFormat).Execute(ctx)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(res.Data)
			return err
		}
		if err := os.WriteFile(exportOutput, res.Data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", args[0], exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(exportCmd)

	queryCmd.Flags().StringVarP(&queryDocument, "document", "d", "", "document to query")
	exportCmd.Flags().StringVar(&exportFormat, "format", commands.FormatJSON, "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
}
