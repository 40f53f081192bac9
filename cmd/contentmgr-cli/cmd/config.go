package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"contentmgr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved preferences",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config file and effective project root",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:         %s\n", configPath)
		fmt.Fprintf(out, "root_directory: %s\n", cfg.RootDirectory)
		fmt.Fprintf(out, "dark_mode:      %t\n", cfg.DarkMode)
		fmt.Fprintf(out, "effective root: %s\n", projectRoot())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <root_directory|dark_mode> <value>",
	Short: "Change a saved preference",
	Long: `Change a saved preference and rewrite the config file.

Examples:
  contentmgr-cli config set root_directory ~/games/rpg
  contentmgr-cli config set dark_mode true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "root_directory", "root":
			abs, err := config.CheckRoot(value)
			if err != nil {
				return err
			}
			cfg.RootDirectory = abs
		case "dark_mode", "dark":
			on, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid dark_mode %q: %w", value, err)
			}
			cfg.DarkMode = on
		default:
			return fmt.Errorf("unknown setting %q (expected root_directory or dark_mode)", key)
		}

		if err := config.Save(configPath, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s in %s\n", key, configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
