package commands

import (
	"context"
	"fmt"

	"contentmgr/internal/application"
)

// ReloadResult contains the result of a reload
type ReloadResult struct {
	Discarded []string
	Message   string
}

// ReloadCommand discards unsaved changes and reads every document again
type ReloadCommand struct {
	session *application.Session
}

// NewReloadCommand creates a new ReloadCommand
func NewReloadCommand(session *application.Session) *ReloadCommand {
	return &ReloadCommand{session: session}
}

// Execute runs the reload command
func (c *ReloadCommand) Execute(ctx context.Context) (*ReloadResult, error) {
	discarded := c.session.DirtyDocuments()

	if err := c.session.Reload(ctx); err != nil {
		return nil, fmt.Errorf("failed to reload: %w", err)
	}

	msg := "Reloaded all documents"
	if len(discarded) > 0 {
		msg = fmt.Sprintf("Reloaded all documents, discarded changes to %d", len(discarded))
	}
	return &ReloadResult{Discarded: discarded, Message: msg}, nil
}
