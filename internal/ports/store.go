package ports

import (
	"context"

	"contentmgr/internal/domain"
)

// DocumentStore defines the interface for loading and persisting documents
type DocumentStore interface {
	// Load reads a document by catalog name. A missing or unparsable file
	// yields an empty mapping rather than an error.
	Load(ctx context.Context, name string) (*domain.Node, error)

	// Save backs up the current file, then writes tree in its place
	Save(ctx context.Context, name string, tree *domain.Node) error

	// SaveAll saves every document in docs, continuing past failures
	SaveAll(ctx context.Context, docs domain.DocumentSet) error

	// FilePath returns the location of a document's backing file
	FilePath(name string) (string, error)
}
