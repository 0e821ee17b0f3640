// Package strings provides small string and slice helpers used across modules
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a mount path like /detection or /monitoring
// ensures a single leading slash and no trailing slash except for the root itself
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// SQLNullPtr returns nil if ps is nil or points to a blank string, else the
// dereferenced string. Used for query args where NULL is wanted for blanks
func SQLNullPtr(ps *string) any {
	if ps == nil || std.TrimSpace(*ps) == "" {
		return nil
	}
	return *ps
}
