// Package ownership decides which records a user may see or change.
package ownership

import "github.com/techpark-119/Todo-App/internal/domain"

// Todos returns the todos owned by userID, in collection order.
func Todos(records []domain.Todo, userID string) []domain.Todo {
	out := make([]domain.Todo, 0, len(records))
	for _, t := range records {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

// Partition splits records into the ones owned by userID and all others,
// keeping the relative order of each half.
func Partition(records []domain.Todo, userID string) (owned, others []domain.Todo) {
	owned = make([]domain.Todo, 0, len(records))
	others = make([]domain.Todo, 0, len(records))
	for _, t := range records {
		if t.UserID == userID {
			owned = append(owned, t)
		} else {
			others = append(others, t)
		}
	}
	return owned, others
}

// Categories returns the categories visible to userID: their own plus the
// shared defaults.
func Categories(records []domain.Category, userID string) []domain.Category {
	out := make([]domain.Category, 0, len(records))
	for _, c := range records {
		if c.UserID == nil || *c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

// OwnedCategories returns only the categories userID created.
func OwnedCategories(records []domain.Category, userID string) []domain.Category {
	out := make([]domain.Category, 0, len(records))
	for _, c := range records {
		if c.UserID != nil && *c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}
