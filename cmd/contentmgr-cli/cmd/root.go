package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"contentmgr/internal/adapters/filesystem"
	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/config"
	"contentmgr/internal/domain"
	"contentmgr/internal/logging"
)

var (
	rootDir    string
	configPath string
	verbose    bool
	dryRun     bool

	logger  *zap.Logger
	cfg     config.Config
	session *application.Session
)

var rootCmd = &cobra.Command{
	Use:   "contentmgr-cli",
	Short: "CLI for editing game data documents",
	Long: `contentmgr-cli reads and edits the JSON documents that describe an
RPG's classes, races, skills, rarities, status effects and items.

Edits are written back with a timestamped backup of the previous file
unless --dry-run is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(logging.Options{Level: level})
		if err != nil {
			return err
		}

		cfg = config.Load(configPath, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "project root holding the data directory (default: config, then $"+config.EnvRoot+")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "apply edits in memory without saving")
}

// projectRoot resolves --root, then the environment, then the config file
func projectRoot() string {
	if rootDir != "" {
		return rootDir
	}
	return config.ProjectRoot(cfg)
}

// GetSession loads every document under the project root on first use
func GetSession(ctx context.Context) (*application.Session, error) {
	if session != nil {
		return session, nil
	}
	root, err := config.CheckRoot(projectRoot())
	if err != nil {
		return nil, err
	}

	catalog := domain.DefaultCatalog()
	store := filesystem.NewOSStore(root, catalog, filesystem.WithLogger(logger))
	s := application.NewSession(store, catalog, logger)
	if err := s.LoadAll(ctx); err != nil {
		return nil, err
	}
	session = s
	return session, nil
}

// persist saves a document after a mutating command
func persist(ctx context.Context, cmd *cobra.Command, s *application.Session, document string) error {
	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "dry run: %s not saved\n", document)
		return nil
	}
	if !s.Dirty(document) {
		return nil
	}
	result, err := commands.NewSaveDocumentCommand(s, document).Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}
