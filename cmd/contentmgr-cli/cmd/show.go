package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <document> <path>",
	Short: "Show the fields of an entry",
	Long: `Show the fields of an entry with the role used to edit each one.
Branches list their child keys.

Examples:
  contentmgr-cli show Skills skills/fireball
  contentmgr-cli show Weapons melee/one_hand`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		res, err := commands.NewShowFieldsCommand(s, args[0], domain.ParsePath(args[1])).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%s)\n", res.Document, res.Path, res.Class)
		if !res.Value.IsMap() {
			fmt.Fprintln(out, res.Value.Text())
			return nil
		}
		for _, f := range res.Fields {
			text := f.Text
			if f.Role == domain.RoleNested {
				text = fmt.Sprintf("{%d keys}", f.Value.Len())
			}
			fmt.Fprintf(out, "  %-14s %-12s %s\n", f.Key, f.Role, text)
		}
		return nil
	},
}

var enumsCmd = &cobra.Command{
	Use:   "enums",
	Short: "List known rarity tiers and elemental tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetSession(cmd.Context())
		if err != nil {
			return err
		}
		enums := s.Enums()
		fmt.Fprintf(cmd.OutOrStdout(), "rarities: %s\nelements: %s\n",
			strings.Join(enums.Rarities, ", "),
			strings.Join(enums.Elements, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(enumsCmd)
}
