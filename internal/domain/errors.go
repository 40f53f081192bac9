package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for tree addressing and document handling
var (
	ErrNotFound        = errors.New("not found")
	ErrNotMapping      = errors.New("not a mapping")
	ErrEmptyPath       = errors.New("empty path")
	ErrAlreadyExists   = errors.New("already exists")
	ErrUnknownDocument = errors.New("unknown document")
)

// PathError reports which segment of a path failed to resolve.
// Every PathError matches ErrNotFound, whatever its cause.
type PathError struct {
	Path    Path
	Segment int
	Err     error
}

func (e *PathError) Error() string {
	if e.Segment >= 0 && e.Segment < len(e.Path) {
		return fmt.Sprintf("path %s: segment %q: %v", e.Path, e.Path[e.Segment], e.Err)
	}
	return fmt.Sprintf("path %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func (e *PathError) Is(target error) bool {
	return target == ErrNotFound
}

// SaveFailures aggregates per-document write errors from a save-all
type SaveFailures struct {
	Errors map[string]error
}

func (e *SaveFailures) Error() string {
	names := e.Names()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e.Errors[name]))
	}
	return fmt.Sprintf("failed to save %d document(s): %s", len(names), strings.Join(parts, "; "))
}

// Names returns the failed document names, sorted
func (e *SaveFailures) Names() []string {
	names := make([]string, 0, len(e.Errors))
	for name := range e.Errors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *SaveFailures) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, name := range e.Names() {
		errs = append(errs, e.Errors[name])
	}
	return errs
}
