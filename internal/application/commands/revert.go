package commands

import (
	"context"
	"fmt"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// RevertEntryResult contains the result of reverting an entry
type RevertEntryResult struct {
	Document string
	Path     domain.Path
	Message  string
}

// RevertEntryCommand restores one entry to its last loaded or saved state
type RevertEntryCommand struct {
	session  *application.Session
	Document string
	Path     domain.Path
}

// NewRevertEntryCommand creates a new RevertEntryCommand
func NewRevertEntryCommand(session *application.Session, document string, path domain.Path) *RevertEntryCommand {
	return &RevertEntryCommand{
		session:  session,
		Document: document,
		Path:     path,
	}
}

// Validate checks if the revert is valid
func (c *RevertEntryCommand) Validate() error {
	if err := application.ValidateRequired("document", c.Document); err != nil {
		return err
	}
	if len(c.Path) == 0 {
		return application.ErrNoSelection
	}
	return nil
}

// Execute runs the revert command
func (c *RevertEntryCommand) Execute(ctx context.Context) (*RevertEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}
	snapshot, ok := c.session.Snapshot(c.Document)
	if !ok {
		return nil, fmt.Errorf("failed to revert %s: %w", c.Path, domain.ErrNotFound)
	}

	saved, err := domain.Resolve(snapshot, c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to revert %s: no saved version: %w", c.Path, err)
	}
	if err := domain.SetExisting(doc, c.Path, saved.Clone()); err != nil {
		return nil, fmt.Errorf("failed to revert %s: %w", c.Path, err)
	}

	return &RevertEntryResult{
		Document: c.Document,
		Path:     c.Path,
		Message:  fmt.Sprintf("Reverted %s", c.Path),
	}, nil
}
