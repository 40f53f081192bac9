package domain

import "strings"

// MakeKey derives a machine key from a display name:
// "  Iron Sword " becomes "iron_sword".
func MakeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
