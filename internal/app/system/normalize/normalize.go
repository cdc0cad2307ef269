// Package normalize canonicalizes user-entered identity fields before they
// are persisted or compared.
package normalize

import "strings"

// Email lowercases and trims an email address. Lookup and the unique index
// both rely on this canonical form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace; case is preserved for display.
func Name(s string) string {
	return strings.TrimSpace(s)
}
