package application

import "contentmgr/internal/domain"

// Re-export domain types for use by adapters
type (
	Node         = domain.Node
	Path         = domain.Path
	Field        = domain.Field
	FieldRole    = domain.FieldRole
	IndexEntry   = domain.IndexEntry
	TreeItem     = domain.TreeItem
	Enums        = domain.Enums
	DocumentSpec = domain.DocumentSpec
	Placement    = domain.Placement
)

// ParsePath splits a slash separated entry path
func ParsePath(s string) Path {
	return domain.ParsePath(s)
}

// MakeKey derives an entry key from a display name
func MakeKey(name string) string {
	return domain.MakeKey(name)
}
