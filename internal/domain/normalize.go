package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal
// whitespace runs. Used for first/last name normalization.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FullName derives the stored full name from normalized first and last names.
func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
