package models

import "strings"

// Query is one user submission. It is never persisted.
type Query struct {
	Text string
	Mode Mode
}

// Trimmed returns the query text without surrounding whitespace.
func (q Query) Trimmed() string {
	return strings.TrimSpace(q.Text)
}

// IsEmpty reports whether the query has no usable text.
func (q Query) IsEmpty() bool {
	return q.Trimmed() == ""
}
