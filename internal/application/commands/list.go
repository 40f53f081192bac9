package commands

import (
	"context"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// DocumentSummary describes one catalog document
type DocumentSummary struct {
	Name     string
	RelPath  string
	Layout   domain.Layout
	Entries  int
	Modified bool
}

// ListDocumentsCommand lists the catalog with entry counts
type ListDocumentsCommand struct {
	session *application.Session
}

// NewListDocumentsCommand creates a new ListDocumentsCommand
func NewListDocumentsCommand(session *application.Session) *ListDocumentsCommand {
	return &ListDocumentsCommand{session: session}
}

// Execute runs the list documents command
func (c *ListDocumentsCommand) Execute(ctx context.Context) ([]DocumentSummary, error) {
	var out []DocumentSummary
	for _, spec := range c.session.Catalog() {
		doc, err := c.session.Document(spec.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, DocumentSummary{
			Name:     spec.Name,
			RelPath:  spec.RelPath,
			Layout:   spec.Layout,
			Entries:  len(domain.BuildIndex(spec.Layout, doc)),
			Modified: c.session.Dirty(spec.Name),
		})
	}
	return out, nil
}

// ListIndexResult holds a document listing. Nested documents fill Tree and
// Matches; the others fill Entries.
type ListIndexResult struct {
	Document string
	Layout   domain.Layout
	Entries  []domain.IndexEntry
	Tree     *domain.TreeItem
	Matches  []*domain.TreeItem
}

// ListIndexCommand lists a document's entries, optionally filtered
type ListIndexCommand struct {
	session  *application.Session
	Document string
	Query    string
}

// NewListIndexCommand creates a new ListIndexCommand
func NewListIndexCommand(session *application.Session, document, query string) *ListIndexCommand {
	return &ListIndexCommand{
		session:  session,
		Document: document,
		Query:    query,
	}
}

// Execute runs the list index command
func (c *ListIndexCommand) Execute(ctx context.Context) (*ListIndexResult, error) {
	if err := application.ValidateRequired("document", c.Document); err != nil {
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

	res := &ListIndexResult{Document: c.Document, Layout: spec.Layout}
	if spec.Layout == domain.LayoutNested {
		res.Tree = domain.BuildTree(doc)
		res.Matches = domain.MatchTree(res.Tree, c.Query)
		return res, nil
	}

	res.Entries = domain.FilterIndex(domain.BuildIndex(spec.Layout, doc), c.Query)
	return res, nil
}

// BuildTreeCommand builds the row tree of a nested document
type BuildTreeCommand struct {
	session  *application.Session
	Document string
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(session *application.Session, document string) *BuildTreeCommand {
	return &BuildTreeCommand{session: session, Document: document}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) (*domain.TreeItem, error) {
	spec, err := c.session.Spec(c.Document)
	if err != nil {
		return nil, err
	}
	if spec.Layout != domain.LayoutNested {
		return nil, &application.LayoutError{
			Document: spec.Name,
			Layout:   spec.Layout.String(),
			Reason:   "only nested documents are browsed as a tree",
		}
	}
	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}
	return domain.BuildTree(doc), nil
}
