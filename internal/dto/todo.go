package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "github.com/techpark-119/Todo-App/internal/domain"
	"github.com/techpark-119/Todo-App/internal/utils"
)

// DueAt parses dueDate from JSON as either date-only ("2006-01-02") or RFC3339.
// Date-only is stored as start of that day in UTC. An explicit null or "" is
// recorded as set-to-nothing, which clears the date on update.
type DueAt struct {
	t   *time.Time
	set bool
}

func (d *DueAt) UnmarshalJSON(data []byte) error {
	d.set = true
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			parsed = parsed.UTC()
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("dueDate: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d DueAt) Ptr() *time.Time { return d.t }

// IsSet reports whether the field was present in the request body.
func (d DueAt) IsSet() bool { return d.set }

// Tags accepts either a comma-separated string or an array of strings.
type Tags struct {
	list []string
	set  bool
}

func (t *Tags) UnmarshalJSON(data []byte) error {
	t.set = true
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		t.list = []string{}
	case string:
		t.list = utils.SplitTags(v)
	case []interface{}:
		t.list = make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("tags: array items must be strings")
			}
			if s = strings.TrimSpace(s); s != "" {
				t.list = append(t.list, s)
			}
		}
	default:
		return fmt.Errorf("tags: use a comma-separated string or an array of strings")
	}
	return nil
}

func (t Tags) List() []string { return t.list }

func (t Tags) IsSet() bool { return t.set }

type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	DueDate     DueAt  `json:"dueDate"` // optional: "2026-02-19" or RFC3339
	Tags        Tags   `json:"tags"`
}

// UpdateTodoRequest carries only the fields to replace; absent fields keep
// their stored value.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	DueDate     DueAt   `json:"dueDate"`
	Tags        Tags    `json:"tags"`
	Completed   *bool   `json:"completed"`
	Order       *int    `json:"order"`
}

// Patch converts the request into a domain patch.
func (r UpdateTodoRequest) Patch() (dom.TodoPatch, error) {
	p := dom.TodoPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Completed:   r.Completed,
		Order:       r.Order,
	}
	if r.Priority != nil {
		pr, err := dom.ParsePriority(*r.Priority)
		if err != nil {
			return dom.TodoPatch{}, err
		}
		p.Priority = &pr
	}
	if r.DueDate.IsSet() {
		p.SetDueDate = true
		p.DueDate = r.DueDate.Ptr()
	}
	if r.Tags.IsSet() {
		tags := r.Tags.List()
		p.Tags = &tags
	}
	return p, nil
}

type ReorderRequest struct {
	TodoIDs []string `json:"todoIds"`
}

type ListTodosResponse struct {
	Items []dom.Todo `json:"items"`
}
