package commands

import (
	"context"
	"fmt"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// DeleteEntryResult contains the result of a delete operation
type DeleteEntryResult struct {
	Document string
	Path     domain.Path
	Message  string
}

// DeleteEntryCommand removes an entry after explicit confirmation
type DeleteEntryCommand struct {
	session   *application.Session
	Document  string
	Path      domain.Path
	Confirmed bool
}

// NewDeleteEntryCommand creates a new DeleteEntryCommand
func NewDeleteEntryCommand(session *application.Session, document string, path domain.Path, confirmed bool) *DeleteEntryCommand {
	return &DeleteEntryCommand{
		session:   session,
		Document:  document,
		Path:      path,
		Confirmed: confirmed,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteEntryCommand) Validate() error {
	if err := application.ValidateRequired("document", c.Document); err != nil {
		return err
	}
	if len(c.Path) == 0 {
		return application.ErrNoSelection
	}
	if !c.Confirmed {
		return fmt.Errorf("delete %s: %w", c.Path, application.ErrNotConfirmed)
	}
	return nil
}

// Execute runs the delete command
func (c *DeleteEntryCommand) Execute(ctx context.Context) (*DeleteEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}

	if err := domain.Delete(doc, c.Path); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.Path, err)
	}

	if selDoc, selPath, ok := c.session.Selection(); ok && selDoc == c.Document && selPath.HasPrefix(c.Path) {
		c.session.ClearSelection()
	}

	return &DeleteEntryResult{
		Document: c.Document,
		Path:     c.Path,
		Message:  fmt.Sprintf("Deleted %s from %s", c.Path, c.Document),
	}, nil
}
