package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"contentmgr/internal/domain"
	"contentmgr/internal/ports"
)

// Session holds the loaded document set, the snapshot each document was
// last loaded or saved as, the inferred enumerations and the current
// selection. It is not safe for concurrent use.
type Session struct {
	store   ports.DocumentStore
	catalog domain.Catalog
	logger  *zap.Logger

	docs   domain.DocumentSet
	loaded domain.DocumentSet
	enums  domain.Enums

	selDoc  string
	selPath domain.Path
}

// NewSession creates an empty session. Call LoadAll before use.
func NewSession(store ports.DocumentStore, catalog domain.Catalog, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		store:   store,
		catalog: catalog,
		logger:  logger,
		docs:    make(domain.DocumentSet),
		loaded:  make(domain.DocumentSet),
	}
}

// LoadAll reads every catalog document and recomputes the enumerations
func (s *Session) LoadAll(ctx context.Context) error {
	docs := make(domain.DocumentSet, len(s.catalog))
	for _, spec := range s.catalog {
		doc, err := s.store.Load(ctx, spec.Name)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", spec.Name, err)
		}
		docs[spec.Name] = doc
	}

	s.docs = docs
	s.loaded = make(domain.DocumentSet, len(docs))
	for name, doc := range docs {
		s.loaded[name] = doc.Clone()
	}
	s.refreshEnums()

	s.logger.Info("loaded documents",
		zap.Int("documents", len(docs)),
		zap.Int("rarities", len(s.enums.Rarities)),
		zap.Int("elements", len(s.enums.Elements)))
	return nil
}

// Reload discards unsaved changes, reloads every document and clears the
// selection
func (s *Session) Reload(ctx context.Context) error {
	if err := s.LoadAll(ctx); err != nil {
		return err
	}
	s.ClearSelection()
	return nil
}

func (s *Session) refreshEnums() {
	s.enums = domain.InferEnums(s.docs)
}

// SetStore points the session at another document store. The loaded
// documents still come from the previous store until LoadAll runs.
func (s *Session) SetStore(store ports.DocumentStore) {
	s.store = store
}

// Store returns the backing document store
func (s *Session) Store() ports.DocumentStore {
	return s.store
}

// Catalog returns the managed documents in display order
func (s *Session) Catalog() domain.Catalog {
	return s.catalog
}

// Logger returns the session logger
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// Spec looks up a document's catalog entry
func (s *Session) Spec(name string) (domain.DocumentSpec, error) {
	return s.catalog.Lookup(name)
}

// Document returns the live tree of a loaded document
func (s *Session) Document(name string) (*domain.Node, error) {
	if _, err := s.catalog.Lookup(name); err != nil {
		return nil, err
	}
	doc, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not loaded", ErrInvalidOperation, name)
	}
	return doc, nil
}

// Documents returns the live document set
func (s *Session) Documents() domain.DocumentSet {
	return s.docs
}

// Snapshot returns the tree of name as last loaded or saved
func (s *Session) Snapshot(name string) (*domain.Node, bool) {
	doc, ok := s.loaded[name]
	return doc, ok
}

// MarkSaved records the live tree of name as its new snapshot
func (s *Session) MarkSaved(name string) {
	if doc, ok := s.docs[name]; ok {
		s.loaded[name] = doc.Clone()
	}
	s.refreshEnums()
}

// Dirty reports whether a document differs from its snapshot
func (s *Session) Dirty(name string) bool {
	doc, ok := s.docs[name]
	if !ok {
		return false
	}
	return !doc.Equal(s.loaded[name])
}

// DirtyDocuments lists modified documents in catalog order
func (s *Session) DirtyDocuments() []string {
	var names []string
	for _, spec := range s.catalog {
		if s.Dirty(spec.Name) {
			names = append(names, spec.Name)
		}
	}
	return names
}

// Enums returns the rarity and element lists inferred at the last load
// or save
func (s *Session) Enums() domain.Enums {
	return s.enums
}

// Select marks an entry as the current selection
func (s *Session) Select(document string, path domain.Path) {
	s.selDoc = document
	s.selPath = append(domain.Path{}, path...)
}

// Selection returns the current selection. ok is false when nothing is
// selected.
func (s *Session) Selection() (document string, path domain.Path, ok bool) {
	if s.selDoc == "" || len(s.selPath) == 0 {
		return s.selDoc, nil, false
	}
	return s.selDoc, append(domain.Path{}, s.selPath...), true
}

// ClearSelection drops the selected path, keeping the current document
func (s *Session) ClearSelection() {
	s.selPath = nil
}
