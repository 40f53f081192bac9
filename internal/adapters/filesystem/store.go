package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"contentmgr/internal/config"
	"contentmgr/internal/domain"
)

// DocumentMode is the permission of newly created document files
const DocumentMode os.FileMode = 0644

// Store implements ports.DocumentStore on a billy filesystem rooted at the
// project directory
type Store struct {
	fs      billy.Filesystem
	catalog domain.Catalog
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for load and backup warnings
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now for backup naming
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a store over fs. Document paths from catalog are
// relative to the root of fs.
func NewStore(fs billy.Filesystem, catalog domain.Catalog, opts ...Option) *Store {
	s := &Store{
		fs:      fs,
		catalog: catalog,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewOSStore creates a store rooted at a directory on disk
func NewOSStore(root string, catalog domain.Catalog, opts ...Option) *Store {
	return NewStore(osfs.New(config.ExpandHome(root)), catalog, opts...)
}

// Catalog returns the documents this store serves
func (s *Store) Catalog() domain.Catalog {
	return s.catalog
}

// FilePath returns the full path of a document's file
func (s *Store) FilePath(name string) (string, error) {
	spec, err := s.catalog.Lookup(name)
	if err != nil {
		return "", err
	}
	return s.fs.Join(s.fs.Root(), spec.RelPath), nil
}

// Load reads and parses a document. Missing files load as an empty
// mapping; unreadable or malformed files do too, with a warning.
func (s *Store) Load(ctx context.Context, name string) (*domain.Node, error) {
	spec, err := s.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := util.ReadFile(s.fs, spec.RelPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("failed to read document",
				zap.String("document", name),
				zap.String("path", spec.RelPath),
				zap.Error(err))
		}
		return domain.NewMap(), nil
	}

	doc, err := domain.DecodeDocument(data)
	if err != nil {
		s.logger.Warn("failed to parse document, starting empty",
			zap.String("document", name),
			zap.String("path", spec.RelPath),
			zap.Error(err))
		return domain.NewMap(), nil
	}

	s.logger.Debug("loaded document", zap.String("document", name), zap.Int("entries", doc.Len()))
	return doc, nil
}

// Save backs up the existing file, then writes tree in its place
func (s *Store) Save(ctx context.Context, name string, tree *domain.Node) error {
	spec, err := s.catalog.Lookup(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := domain.EncodeDocument(tree)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if _, err := s.fs.Stat(spec.RelPath); err == nil {
		if backup, err := s.backup(spec.RelPath); err != nil {
			s.logger.Warn("failed to back up document",
				zap.String("document", name),
				zap.String("path", spec.RelPath),
				zap.Error(err))
		} else {
			s.logger.Debug("backed up document", zap.String("document", name), zap.String("backup", backup))
		}
	}

	dir := filepath.Dir(spec.RelPath)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}

	if err := s.writeReplace(spec.RelPath, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	s.logger.Info("saved document", zap.String("document", name), zap.String("path", spec.RelPath))
	return nil
}

// SaveAll saves docs in catalog order. Failures do not stop the run; they
// come back together as *domain.SaveFailures.
func (s *Store) SaveAll(ctx context.Context, docs domain.DocumentSet) error {
	failures := make(map[string]error)

	for _, spec := range s.catalog {
		tree, ok := docs[spec.Name]
		if !ok {
			continue
		}
		if err := s.Save(ctx, spec.Name, tree); err != nil {
			failures[spec.Name] = err
		}
	}
	for name := range docs {
		if _, err := s.catalog.Lookup(name); err != nil {
			failures[name] = err
		}
	}

	if len(failures) > 0 {
		return &domain.SaveFailures{Errors: failures}
	}
	return nil
}

// writeReplace writes data to a temp file beside target and renames it over
// target, so a failed write never leaves a truncated document. The target
// keeps its permissions; new files get DocumentMode.
func (s *Store) writeReplace(target string, data []byte) error {
	mode := DocumentMode
	if info, err := s.fs.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Dir(target), filepath.Base(target)
	tmp, err := util.TempFile(s.fs, dir, "."+base+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if ch, ok := s.fs.(billy.Change); ok {
		if err := ch.Chmod(tmpName, mode); err != nil {
			tmp.Close()
			s.fs.Remove(tmpName)
			return err
		}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return err
	}
	if err := s.fs.Rename(tmpName, target); err != nil {
		s.fs.Remove(tmpName)
		return err
	}
	return nil
}
