package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

var setCmd = &cobra.Command{
	Use:   "set <document> <path> <key=value>...",
	Short: "Edit fields of an entry",
	Long: `Edit fields of an entry. Each value is coerced to the type already
stored under its key: booleans accept true/false/1/0/yes/no, numbers keep
integer or decimal form, and lists are comma separated. Text that does not
parse is stored as a string.

Examples:
  contentmgr-cli set Skills skills/fireball power=20 element=Fire
  contentmgr-cli set Classes playable/knight "skills=slash, parry"`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		edits, err := parseAssignments(args[2:])
		if err != nil {
			return err
		}
		s, err := GetSession(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewApplyFieldsCommand(s, args[0], domain.ParsePath(args[1]), edits).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return persist(ctx, cmd, s, args[0])
	},
}

func parseAssignments(args []string) (map[string]string, error) {
	edits := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q (expected key=value)", arg)
		}
		edits[key] = value
	}
	return edits, nil
}

func init() {
	rootCmd.AddCommand(setCmd)
}
