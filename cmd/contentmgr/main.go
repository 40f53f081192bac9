package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-git/go-billy/v5/memfs"
	"go.uber.org/zap"

	"contentmgr/internal/adapters/editor"
	"contentmgr/internal/adapters/filesystem"
	"contentmgr/internal/adapters/tui"
	"contentmgr/internal/application"
	"contentmgr/internal/config"
	"contentmgr/internal/domain"
	"contentmgr/internal/logging"
	"contentmgr/internal/ports"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The screen owns stderr, so logs go to a file
	logger, err := logging.New(logging.Options{Path: logging.DefaultLogPath()})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	configPath := config.DefaultPath()
	cfg := config.Load(configPath, logger)
	root := config.ProjectRoot(cfg)
	logger.Info("starting", zap.String("root", root), zap.String("config", configPath))

	// Initialize adapters
	catalog := domain.DefaultCatalog()
	openStore := func(dir string) ports.DocumentStore {
		return filesystem.NewOSStore(dir, catalog, filesystem.WithLogger(logger))
	}

	abs, rootErr := config.CheckRoot(root)
	if rootErr == nil && !config.RootConfigured(cfg) {
		rootErr = fmt.Errorf("%w: none configured", config.ErrInvalidRoot)
	}
	if abs != "" {
		root = abs
	}

	// Without a usable root the app opens on the root view and the
	// in-memory store is never shown
	var store ports.DocumentStore = filesystem.NewStore(memfs.New(), catalog)
	if rootErr != nil {
		logger.Warn("no usable project root", zap.String("root", root), zap.Error(rootErr))
	} else {
		store = openStore(root)
	}

	session := application.NewSession(store, catalog, logger)
	if err := session.LoadAll(context.Background()); err != nil {
		return err
	}

	// Create and run TUI app
	app := tui.NewApp(session, editor.NewOpener(""), tui.Options{
		ConfigPath: configPath,
		Config:     cfg,
		Logger:     logger,
		Root:       root,
		RootErr:    rootErr,
		OpenStore:  openStore,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
