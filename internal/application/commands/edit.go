package commands

import (
	"context"
	"fmt"
	"strings"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// ApplyFieldsResult reports which fields an edit changed
type ApplyFieldsResult struct {
	Document string
	Path     domain.Path
	Changed  []string
	Skipped  []string
	Message  string
}

// ApplyFieldsCommand writes raw field text back into a record, coercing
// each value to the type currently stored under its key
type ApplyFieldsCommand struct {
	session  *application.Session
	Document string
	Path     domain.Path
	Edits    map[string]string
}

// NewApplyFieldsCommand creates a new ApplyFieldsCommand
func NewApplyFieldsCommand(session *application.Session, document string, path domain.Path, edits map[string]string) *ApplyFieldsCommand {
	return &ApplyFieldsCommand{
		session:  session,
		Document: document,
		Path:     path,
		Edits:    edits,
	}
}

// Validate checks if the edit is valid
func (c *ApplyFieldsCommand) Validate() error {
	if err := application.ValidateRequired("document", c.Document); err != nil {
		return err
	}
	if len(c.Path) == 0 {
		return application.ErrNoSelection
	}
	if len(c.Edits) == 0 {
		return &application.ValidationError{Field: "edits", Message: "at least one field is required"}
	}
	return nil
}

// Execute runs the edit. Nested mappings and unknown keys are skipped.
func (c *ApplyFieldsCommand) Execute(ctx context.Context) (*ApplyFieldsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}
	record, err := domain.Resolve(doc, c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to edit %s: %w", c.Path, err)
	}
	if !record.IsMap() {
		return nil, fmt.Errorf("failed to edit %s: %w", c.Path, domain.ErrNotMapping)
	}

	res := domain.ApplyEdits(record, c.Edits)

	msg := fmt.Sprintf("Saved changes to %s (%d field(s) updated)", c.Path, len(res.Changed))
	if len(res.Changed) == 0 {
		msg = fmt.Sprintf("No changes to %s", c.Path)
	}
	if len(res.Skipped) > 0 {
		msg += fmt.Sprintf("; skipped %s", strings.Join(res.Skipped, ", "))
	}

	return &ApplyFieldsResult{
		Document: c.Document,
		Path:     c.Path,
		Changed:  res.Changed,
		Skipped:  res.Skipped,
		Message:  msg,
	}, nil
}
