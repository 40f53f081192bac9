package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"contentmgr/internal/adapters/filesystem"
	mcpadapter "contentmgr/internal/adapters/mcp"
	"contentmgr/internal/application"
	"contentmgr/internal/config"
	"contentmgr/internal/domain"
	"contentmgr/internal/logging"
)

func main() {
	rootFlag := flag.String("root", "", "project root holding the data directory")
	configFlag := flag.String("config", config.DefaultPath(), "path to the config file")
	levelFlag := flag.String("log-level", "info", "log level")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr
	logger, err := logging.New(logging.Options{Level: *levelFlag})
	if err != nil {
		log.Fatalf("contentmgr-mcp: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	root := *rootFlag
	if root == "" {
		root = config.ProjectRoot(config.Load(*configFlag, logger))
	}

	root, err = config.CheckRoot(root)
	if err != nil {
		logger.Fatal("cannot serve documents", zap.Error(err))
	}

	catalog := domain.DefaultCatalog()
	store := filesystem.NewOSStore(root, catalog, filesystem.WithLogger(logger))
	session := application.NewSession(store, catalog, logger)
	if err := session.LoadAll(context.Background()); err != nil {
		logger.Fatal("failed to load documents", zap.String("root", root), zap.Error(err))
	}

	mcpServer := server.NewMCPServer(
		"contentmgr-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	guard := mcpadapter.NewGuard(session)
	mcpadapter.RegisterReadTools(mcpServer, guard)
	mcpadapter.RegisterWriteTools(mcpServer, guard)

	logger.Info("serving", zap.String("root", root))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("contentmgr-mcp stopped", zap.Error(err))
	}
}
