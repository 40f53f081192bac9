package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoSelection      = errors.New("no entry selected")
	ErrNotConfirmed     = errors.New("not confirmed")
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LayoutError reports a command that does not apply to a document's layout
type LayoutError struct {
	Document string
	Layout   string
	Reason   string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("cannot use %s (%s layout): %s", e.Document, e.Layout, e.Reason)
}

func (e *LayoutError) Is(target error) bool {
	return target == ErrInvalidOperation
}
