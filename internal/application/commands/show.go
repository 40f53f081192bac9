package commands

import (
	"context"
	"fmt"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// ShowFieldsResult describes the node at a path
type ShowFieldsResult struct {
	Document string
	Path     domain.Path
	Class    domain.NodeClass
	Kind     domain.Kind
	Fields   []domain.Field
	Children []string
	Value    *domain.Node
}

// ShowFieldsCommand reads the node at a path for display or editing
type ShowFieldsCommand struct {
	session  *application.Session
	Document string
	Path     domain.Path
}

// NewShowFieldsCommand creates a new ShowFieldsCommand
func NewShowFieldsCommand(session *application.Session, document string, path domain.Path) *ShowFieldsCommand {
	return &ShowFieldsCommand{
		session:  session,
		Document: document,
		Path:     path,
	}
}

// Execute runs the show command. Records list their fields; branches list
// their child keys.
func (c *ShowFieldsCommand) Execute(ctx context.Context) (*ShowFieldsResult, error) {
	if err := application.ValidateRequired("document", c.Document); err != nil {
		return nil, err
	}

	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}
	node, err := domain.Resolve(doc, c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to show %s: %w", c.Path, err)
	}

	res := &ShowFieldsResult{
		Document: c.Document,
		Path:     c.Path,
		Class:    domain.Classify(node),
		Kind:     node.Kind(),
		Value:    node,
	}
	if node.IsMap() {
		res.Fields = domain.RecordFields(node)
		res.Children = node.Keys()
	}
	return res, nil
}
