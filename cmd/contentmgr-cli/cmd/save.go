package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"contentmgr/internal/application/commands"
)

var saveCmd = &cobra.Command{
	Use:   "save [document...]",
	Short: "Rewrite documents in canonical form",
	Long: `Rewrite documents with four-space indentation, keeping key order and a
timestamped backup of each previous file. Without arguments every loaded
document is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}
		if dryRun {
			fmt.Fprintln(cmd.OutOrStdout(), "dry run: nothing saved")
			return nil
		}

		if len(args) == 0 {
			// partial failures still carry a result
			result, err := commands.NewSaveAllCommand(s).Execute(ctx)
			if result != nil {
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			}
			return err
		}

		for _, name := range args {
			result, err := commands.NewSaveDocumentCommand(s, name).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
