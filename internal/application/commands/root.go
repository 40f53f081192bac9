package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"contentmgr/internal/application"
	"contentmgr/internal/ports"
)

// ChangeRootResult contains the result of switching project roots
type ChangeRootResult struct {
	Root      string
	Discarded []string
	Message   string
}

// ChangeRootCommand loads every document from a store rooted elsewhere.
// Unsaved changes are discarded; if the new store fails to load the
// session keeps its previous store and documents.
type ChangeRootCommand struct {
	session *application.Session
	root    string
	store   ports.DocumentStore
}

// NewChangeRootCommand creates a new ChangeRootCommand
func NewChangeRootCommand(session *application.Session, root string, store ports.DocumentStore) *ChangeRootCommand {
	return &ChangeRootCommand{session: session, root: root, store: store}
}

// Validate checks that a store was supplied
func (c *ChangeRootCommand) Validate() error {
	if c.store == nil {
		return fmt.Errorf("%w: no store for %s", application.ErrInvalidOperation, c.root)
	}
	return application.ValidateRequired("root", c.root)
}

// Execute runs the change root command
func (c *ChangeRootCommand) Execute(ctx context.Context) (*ChangeRootResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	discarded := c.session.DirtyDocuments()
	previous := c.session.Store()

	c.session.SetStore(c.store)
	if err := c.session.Reload(ctx); err != nil {
		c.session.SetStore(previous)
		return nil, fmt.Errorf("failed to open %s: %w", c.root, err)
	}

	c.session.Logger().Info("changed project root",
		zap.String("root", c.root),
		zap.Int("discarded", len(discarded)))

	msg := "Opened " + c.root
	if len(discarded) > 0 {
		msg = fmt.Sprintf("Opened %s, discarded changes to %d", c.root, len(discarded))
	}
	return &ChangeRootResult{Root: c.root, Discarded: discarded, Message: msg}, nil
}
