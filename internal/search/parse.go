package search

import (
	"strings"

	"github.com/techpark-119/Todo-App/internal/domain"
)

// Query is the raw, string-typed form of a search as it arrives from a
// client.
type Query struct {
	Q         string
	Category  string
	Priority  string
	Completed string
}

// Parse validates q and turns it into Criteria.
func Parse(q Query) (Criteria, error) {
	c := Criteria{
		Text:     strings.TrimSpace(q.Q),
		Category: strings.TrimSpace(q.Category),
	}
	if p := strings.TrimSpace(q.Priority); p != "" {
		pr, err := domain.ParsePriority(p)
		if err != nil {
			return Criteria{}, err
		}
		c.Priority = pr
	}
	completed, err := ParseCompleted(q.Completed)
	if err != nil {
		return Criteria{}, err
	}
	c.Completed = completed
	return c, nil
}

// ParseCompleted maps "" to nil and "true"/"false" to the boolean.
func ParseCompleted(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	}
	return nil, &domain.ValidationError{Field: "completed", Reason: `must be "true" or "false"`}
}
