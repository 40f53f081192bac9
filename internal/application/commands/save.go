package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// SaveResult reports which documents were written
type SaveResult struct {
	Saved   []string
	Failed  []string
	Message string
}

// SaveDocumentCommand writes one document to disk with a backup
type SaveDocumentCommand struct {
	session  *application.Session
	Document string
}

// NewSaveDocumentCommand creates a new SaveDocumentCommand
func NewSaveDocumentCommand(session *application.Session, document string) *SaveDocumentCommand {
	return &SaveDocumentCommand{session: session, Document: document}
}

// Execute runs the save command
func (c *SaveDocumentCommand) Execute(ctx context.Context) (*SaveResult, error) {
	if err := application.ValidateRequired("document", c.Document); err != nil {
		return nil, err
	}
	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}

	if err := c.session.Store().Save(ctx, c.Document, doc); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", c.Document, err)
	}
	c.session.MarkSaved(c.Document)

	return &SaveResult{
		Saved:   []string{c.Document},
		Message: fmt.Sprintf("Saved %s", c.Document),
	}, nil
}

// SaveAllCommand writes every loaded document, continuing past failures
type SaveAllCommand struct {
	session *application.Session
}

// NewSaveAllCommand creates a new SaveAllCommand
func NewSaveAllCommand(session *application.Session) *SaveAllCommand {
	return &SaveAllCommand{session: session}
}

// Execute runs the save-all command. When some documents fail the result
// is still returned alongside a *domain.SaveFailures error.
func (c *SaveAllCommand) Execute(ctx context.Context) (*SaveResult, error) {
	err := c.session.Store().SaveAll(ctx, c.session.Documents())

	var failures *domain.SaveFailures
	if err != nil && !errors.As(err, &failures) {
		return nil, fmt.Errorf("failed to save documents: %w", err)
	}

	res := &SaveResult{}
	for _, spec := range c.session.Catalog() {
		if _, ok := c.session.Documents()[spec.Name]; !ok {
			continue
		}
		if failures != nil {
			if _, failed := failures.Errors[spec.Name]; failed {
				res.Failed = append(res.Failed, spec.Name)
				continue
			}
		}
		c.session.MarkSaved(spec.Name)
		res.Saved = append(res.Saved, spec.Name)
	}

	if failures != nil {
		for _, name := range failures.Names() {
			c.session.Logger().Error("failed to save document",
				zap.String("document", name),
				zap.Error(failures.Errors[name]))
		}
		res.Message = fmt.Sprintf("Saved %d document(s), %d failed", len(res.Saved), len(res.Failed))
		return res, failures
	}

	res.Message = fmt.Sprintf("Saved all %d document(s)", len(res.Saved))
	return res, nil
}
