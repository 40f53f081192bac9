package commands

import (
	"context"
	"fmt"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// DuplicateEntryResult contains the result of duplicating an entry
type DuplicateEntryResult struct {
	Document string
	Source   domain.Path
	Path     domain.Path
	Message  string
}

// DuplicateEntryCommand copies an entry next to itself under a new name
type DuplicateEntryCommand struct {
	session  *application.Session
	Document string
	Source   domain.Path
	NewName  string
}

// NewDuplicateEntryCommand creates a new DuplicateEntryCommand
func NewDuplicateEntryCommand(session *application.Session, document string, source domain.Path, newName string) *DuplicateEntryCommand {
	return &DuplicateEntryCommand{
		session:  session,
		Document: document,
		Source:   source,
		NewName:  newName,
	}
}

// Validate checks if the duplicate operation is valid
func (c *DuplicateEntryCommand) Validate() error {
	if err := application.ValidateRequired("document", c.Document); err != nil {
		return err
	}
	if len(c.Source) == 0 {
		return application.ErrNoSelection
	}
	_, err := application.ValidateName("newName", c.NewName)
	return err
}

// Execute runs the duplicate command. The copy is deep; when it is a
// mapping its name field is set to the new display name.
func (c *DuplicateEntryCommand) Execute(ctx context.Context) (*DuplicateEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}

	src, err := domain.Resolve(doc, c.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate %s: %w", c.Source, err)
	}

	target := c.Source.Parent().Child(domain.MakeKey(c.NewName))
	if _, err := domain.Resolve(doc, target); err == nil {
		return nil, fmt.Errorf("failed to duplicate %s as %s: %w", c.Source, target, domain.ErrAlreadyExists)
	}

	dup := src.Clone()
	if dup.IsMap() {
		dup.Set("name", domain.String(c.NewName))
	}

	if err := domain.SetExisting(doc, target, dup); err != nil {
		return nil, fmt.Errorf("failed to duplicate %s as %s: %w", c.Source, target, err)
	}

	c.session.Select(c.Document, target)

	return &DuplicateEntryResult{
		Document: c.Document,
		Source:   c.Source,
		Path:     target,
		Message:  fmt.Sprintf("Duplicated %s as %s", c.Source, target),
	}, nil
}
