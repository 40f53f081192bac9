package application

import (
	"fmt"
	"strings"

	"contentmgr/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName turns a camelCase field name into words for error messages
func formatFieldName(fieldName string) string {
	if fieldName == "newName" {
		return "new name"
	}
	return fieldName
}

// ValidateName checks that a display name is present and yields a usable key.
// Returns the derived key.
func ValidateName(fieldName, name string) (string, error) {
	if err := ValidateRequired(fieldName, name); err != nil {
		return "", err
	}
	key := domain.MakeKey(name)
	if key == "" || strings.Contains(key, "/") {
		return "", &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%q does not make a valid key", name),
		}
	}
	return key, nil
}

// ValidatePlacement checks the container choices a layout needs for a new entry
func ValidatePlacement(spec domain.DocumentSpec, p domain.Placement) error {
	switch spec.Layout {
	case domain.LayoutGrouped:
		if err := ValidateRequired("group", p.Group); err != nil {
			return err
		}
		if !domain.ValidGroup(p.Group) {
			return &ValidationError{
				Field:   "group",
				Message: fmt.Sprintf("expected one of %s, got: %s", strings.Join(domain.Groups, ", "), p.Group),
			}
		}
	case domain.LayoutNested:
		if err := ValidateRequired("category", p.Category); err != nil {
			return err
		}
		if err := ValidateRequired("slot", p.Slot); err != nil {
			return err
		}
		for field, v := range map[string]string{"category": p.Category, "slot": p.Slot} {
			if strings.Contains(v, "/") {
				return &ValidationError{Field: field, Message: fmt.Sprintf("%s must not contain '/'", field)}
			}
		}
	}
	return nil
}
