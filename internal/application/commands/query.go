package commands

import (
	"context"
	"fmt"

	"github.com/ohler55/ojg/jp"

	"contentmgr/internal/application"
)

// QueryResult holds the values a JSONPath expression selected
type QueryResult struct {
	Document   string
	Expression string
	Values     []any
}

// QueryCommand evaluates a JSONPath expression against a document, or
// against every document keyed by name when Document is empty
type QueryCommand struct {
	session    *application.Session
	Document   string
	Expression string
}

// NewQueryCommand creates a new QueryCommand
func NewQueryCommand(session *application.Session, document, expression string) *QueryCommand {
	return &QueryCommand{
		session:    session,
		Document:   document,
		Expression: expression,
	}
}

// Execute runs the query command
func (c *QueryCommand) Execute(ctx context.Context) (*QueryResult, error) {
	if err := application.ValidateRequired("expression", c.Expression); err != nil {
		return nil, err
	}

	x, err := jp.ParseString(c.Expression)
	if err != nil {
		return nil, &application.ValidationError{
			Field:   "expression",
			Message: fmt.Sprintf("invalid jsonpath %q: %v", c.Expression, err),
		}
	}

	var root any
	if c.Document != "" {
		doc, err := c.session.Document(c.Document)
		if err != nil {
			return nil, err
		}
		root = doc.Interface()
	} else {
		all := make(map[string]any, len(c.session.Catalog()))
		for _, spec := range c.session.Catalog() {
			doc, err := c.session.Document(spec.Name)
			if err != nil {
				return nil, err
			}
			all[spec.Name] = doc.Interface()
		}
		root = all
	}

	return &QueryResult{
		Document:   c.Document,
		Expression: c.Expression,
		Values:     x.Get(root),
	}, nil
}
