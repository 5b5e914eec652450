package domain

import (
	"strings"
	"time"
)

const DefaultCategory = "Personal"

// Priority is the urgency of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority returns PriorityMedium for an empty value.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(s)
	if !p.Valid() {
		return "", &ValidationError{Field: "priority", Reason: "must be low, medium or high"}
	}
	return p, nil
}

// Todo is one persisted todo record.
//
// Order is both the creation sequence and the display rank: it starts as the
// number of todos the owner had at creation time and is rewritten by reorder.
type Todo struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Category    string     `json:"category" yaml:"category"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	DueDate     *time.Time `json:"dueDate" yaml:"dueDate"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Completed   bool       `json:"completed" yaml:"completed"`
	UserID      string     `json:"userId" yaml:"userId"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" yaml:"updatedAt"`
	Order       int        `json:"order" yaml:"order"`
}

// NewTodo holds the caller-supplied fields of a todo being created.
// Zero values mean "use the default".
type NewTodo struct {
	Title       string
	Description string
	Category    string
	Priority    Priority
	DueDate     *time.Time
	Tags        []string
}

// TodoPatch is a shallow partial update: every non-nil field replaces the
// stored value wholesale. DueDate is applied only when SetDueDate is true,
// so a nil DueDate with SetDueDate clears it.
type TodoPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *Priority
	DueDate     *time.Time
	SetDueDate  bool
	Tags        *[]string
	Completed   *bool
	Order       *int
}

// Empty reports whether the patch changes nothing.
func (p TodoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.Priority == nil && !p.SetDueDate && p.Tags == nil &&
		p.Completed == nil && p.Order == nil
}
