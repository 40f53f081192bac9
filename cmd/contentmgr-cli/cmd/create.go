package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

var (
	createGroup    string
	createCategory string
	createSlot     string
)

var createCmd = &cobra.Command{
	Use:   "create <document> <name>",
	Short: "Create a templated entry",
	Long: `Create a new entry from the document's template. The key is derived
from the name: lower-cased, with spaces turned into underscores.

Grouped documents (Classes, Races) need --group; nested documents
(Armors, Weapons) need --category and --slot.

Examples:
  contentmgr-cli create Skills "Ice Lance"
  contentmgr-cli create Classes Paladin --group playable
  contentmgr-cli create Weapons "Long Bow" --category ranged --slot bow`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		placement := domain.Placement{
			Group:    createGroup,
			Category: domain.MakeKey(createCategory),
			Slot:     domain.MakeKey(createSlot),
		}
		result, err := commands.NewCreateEntryCommand(s, args[0], args[1], placement).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return persist(ctx, cmd, s, args[0])
	},
}

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <document> <path> <new-name>",
	Short: "Copy an entry under a new name",
	Long: `Copy an entry next to the original. The copy's key is derived from the
new name and its name field is set to the new name.

Examples:
  contentmgr-cli duplicate Skills skills/fireball "Big Fireball"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewDuplicateEntryCommand(s, args[0], domain.ParsePath(args[1]), args[2]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return persist(ctx, cmd, s, args[0])
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(duplicateCmd)

	createCmd.Flags().StringVarP(&createGroup, "group", "g", "", "group for Classes and Races (playable, non_playable)")
	createCmd.Flags().StringVar(&createCategory, "category", "", "category for Armors and Weapons")
	createCmd.Flags().StringVar(&createSlot, "slot", "", "slot for Armors and Weapons")
}
