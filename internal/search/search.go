// Package search filters a user's todos in memory.
package search

import (
	"strings"

	"github.com/techpark-119/Todo-App/internal/domain"
)

// Criteria are ANDed together. Empty strings and a nil Completed mean the
// criterion was not given.
type Criteria struct {
	Text      string
	Category  string
	Priority  domain.Priority
	Completed *bool
}

// Matches reports whether t satisfies every given criterion.
func (c Criteria) Matches(t domain.Todo) bool {
	if c.Text != "" && !matchesText(t, strings.ToLower(c.Text)) {
		return false
	}
	if c.Category != "" && t.Category != c.Category {
		return false
	}
	if c.Priority != "" && t.Priority != c.Priority {
		return false
	}
	if c.Completed != nil && t.Completed != *c.Completed {
		return false
	}
	return true
}

// Apply returns the todos matching c in their input order.
func Apply(todos []domain.Todo, c Criteria) []domain.Todo {
	out := make([]domain.Todo, 0, len(todos))
	for _, t := range todos {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// matchesText is a case-insensitive substring match on title, description
// or any tag. q must already be lower-cased.
func matchesText(t domain.Todo, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
