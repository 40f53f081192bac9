package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <document> <path>",
	Short: "Delete an entry",
	Long: `Delete an entry from a document. Deleting a branch removes everything
under it. Requires --yes.

The previous file is kept as a timestamped backup when the document is
saved.

Examples:
  contentmgr-cli delete Skills skills/fireball --yes
  contentmgr-cli delete Weapons ranged/bow --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewDeleteEntryCommand(s, args[0], domain.ParsePath(args[1]), deleteYes).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return persist(ctx, cmd, s, args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "confirm the deletion")
}
