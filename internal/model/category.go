package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultCategories seeds a ledger that has no category file yet.
var defaultCategories = []string{"Food", "Transport", "Entertainment", "Shopping", "Bills", "Healthcare", "Other"}

// DefaultCategories returns a fresh copy of the seed category list.
func DefaultCategories() []string {
	out := make([]string, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// NormalizeCategory returns the canonical (trimmed, lowercase) form of name.
func NormalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayCategory capitalizes the first letter and lowercases the rest,
// e.g. "home office" -> "Home office".
func DisplayCategory(name string) string {
	name = NormalizeCategory(name)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
