package commands

import (
	"context"
	"fmt"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// CreateEntryResult contains the result of creating an entry
type CreateEntryResult struct {
	Document string
	Path     domain.Path
	Key      string
	Message  string
}

// CreateEntryCommand adds a templated entry to a document
type CreateEntryCommand struct {
	session   *application.Session
	Document  string
	Name      string
	Placement domain.Placement
}

// NewCreateEntryCommand creates a new CreateEntryCommand
func NewCreateEntryCommand(session *application.Session, document, name string, placement domain.Placement) *CreateEntryCommand {
	return &CreateEntryCommand{
		session:   session,
		Document:  document,
		Name:      name,
		Placement: placement,
	}
}

// Validate checks the name and the container choices the layout needs
func (c *CreateEntryCommand) Validate() error {
	if err := application.ValidateRequired("document", c.Document); err != nil {
		return err
	}
	if _, err := application.ValidateName("name", c.Name); err != nil {
		return err
	}
	if c.session == nil {
		return nil
	}
	spec, err := c.session.Spec(c.Document)
	if err != nil {
		return err
	}
	return application.ValidatePlacement(spec, c.Placement)
}

// Execute runs the create entry command. Nothing is written to disk.
func (c *CreateEntryCommand) Execute(ctx context.Context) (*CreateEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	spec, err := c.session.Spec(c.Document)
	if err != nil {
		return nil, err
	}
	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}

	key := domain.MakeKey(c.Name)
	path := spec.EntryPath(doc, c.Placement, key)

	if _, err := domain.Resolve(doc, path); err == nil {
		return nil, fmt.Errorf("failed to create %s in %s: %w", path, c.Document, domain.ErrAlreadyExists)
	}

	if err := domain.SetOrCreatePath(doc, path, spec.Template(c.Name)); err != nil {
		return nil, fmt.Errorf("failed to create %s in %s: %w", path, c.Document, err)
	}

	c.session.Select(c.Document, path)

	return &CreateEntryResult{
		Document: c.Document,
		Path:     path,
		Key:      key,
		Message:  fmt.Sprintf("Created %s in %s", path, c.Document),
	}, nil
}
