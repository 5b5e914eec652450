package repo

import (
	"cmp"
	"context"
	"slices"
	"strings"

	dom "github.com/techpark-119/Todo-App/internal/domain"
	"github.com/techpark-119/Todo-App/internal/ownership"
	"github.com/techpark-119/Todo-App/internal/search"
	"github.com/techpark-119/Todo-App/internal/store"
)

// TodoRepo provides owner-scoped todo persistence. Records owned by another
// user behave exactly like missing ones.
type TodoRepo interface {
	Create(ctx context.Context, userID string, in dom.NewTodo) (dom.Todo, error)
	Get(ctx context.Context, userID, id string) (dom.Todo, error)
	List(ctx context.Context, userID string) ([]dom.Todo, error)
	Update(ctx context.Context, userID, id string, patch dom.TodoPatch) (dom.Todo, error)
	Delete(ctx context.Context, userID, id string) error
	Reorder(ctx context.Context, userID string, ids []string) error
	Search(ctx context.Context, userID string, c search.Criteria) ([]dom.Todo, error)
}

var _ TodoRepo = (*CollectionTodoRepo)(nil)

// CollectionTodoRepo implements TodoRepo on the "todos" store collection.
type CollectionTodoRepo struct {
	todos *store.Collection[dom.Todo]
	opts  options
}

func NewTodoRepo(s *store.Store, opts ...Option) *CollectionTodoRepo {
	return &CollectionTodoRepo{
		todos: store.NewCollection[dom.Todo](s, TodosCollection),
		opts:  buildOptions(opts),
	}
}

// Init makes sure the collection exists.
func (r *CollectionTodoRepo) Init(ctx context.Context) error {
	_, err := r.todos.Ensure(ctx, nil)
	return err
}

func (r *CollectionTodoRepo) Create(ctx context.Context, userID string, in dom.NewTodo) (dom.Todo, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return dom.Todo{}, dom.Required("title")
	}
	priority := in.Priority
	if priority == "" {
		priority = dom.PriorityMedium
	}
	if !priority.Valid() {
		return dom.Todo{}, &dom.ValidationError{Field: "priority", Reason: "must be low, medium or high"}
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = dom.DefaultCategory
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	now := r.opts.now()
	t := dom.Todo{
		ID:          r.opts.newID(),
		Title:       title,
		Description: in.Description,
		Category:    category,
		Priority:    priority,
		DueDate:     in.DueDate,
		Tags:        tags,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := r.todos.Update(ctx, func(all []dom.Todo) ([]dom.Todo, error) {
		t.Order = len(ownership.Todos(all, userID))
		return append(all, t), nil
	})
	if err != nil {
		return dom.Todo{}, err
	}
	return t, nil
}

func (r *CollectionTodoRepo) Get(ctx context.Context, userID, id string) (dom.Todo, error) {
	for _, t := range r.todos.Load(ctx) {
		if t.ID == id && t.UserID == userID {
			return t, nil
		}
	}
	return dom.Todo{}, dom.ErrNotFound
}

// List returns the user's todos in display order.
func (r *CollectionTodoRepo) List(ctx context.Context, userID string) ([]dom.Todo, error) {
	owned := ownership.Todos(r.todos.Load(ctx), userID)
	SortByOrder(owned)
	return owned, nil
}

func (r *CollectionTodoRepo) Update(ctx context.Context, userID, id string, patch dom.TodoPatch) (dom.Todo, error) {
	if err := validatePatch(patch); err != nil {
		return dom.Todo{}, err
	}
	var updated dom.Todo
	err := r.todos.Update(ctx, func(all []dom.Todo) ([]dom.Todo, error) {
		i := slices.IndexFunc(all, func(t dom.Todo) bool {
			return t.ID == id && t.UserID == userID
		})
		if i < 0 {
			return nil, dom.ErrNotFound
		}
		applyPatch(&all[i], patch)
		all[i].UpdatedAt = r.opts.now()
		if all[i].UpdatedAt.Before(all[i].CreatedAt) {
			all[i].UpdatedAt = all[i].CreatedAt
		}
		updated = all[i]
		return all, nil
	})
	if err != nil {
		return dom.Todo{}, err
	}
	return updated, nil
}

func (r *CollectionTodoRepo) Delete(ctx context.Context, userID, id string) error {
	return r.todos.Update(ctx, func(all []dom.Todo) ([]dom.Todo, error) {
		kept := slices.DeleteFunc(slices.Clone(all), func(t dom.Todo) bool {
			return t.ID == id && t.UserID == userID
		})
		if len(kept) == len(all) {
			return nil, dom.ErrNotFound
		}
		return kept, nil
	})
}

// Reorder gives each of the user's todos listed in ids its position in ids
// as the new order. Todos not listed keep their order; ids the user does not
// own are ignored. The user's todos are written after everyone else's.
func (r *CollectionTodoRepo) Reorder(ctx context.Context, userID string, ids []string) error {
	return r.todos.Update(ctx, func(all []dom.Todo) ([]dom.Todo, error) {
		owned, others := ownership.Partition(all, userID)
		for pos, id := range ids {
			for i := range owned {
				if owned[i].ID == id {
					owned[i].Order = pos
					break
				}
			}
		}
		return append(others, owned...), nil
	})
}

func (r *CollectionTodoRepo) Search(ctx context.Context, userID string, c search.Criteria) ([]dom.Todo, error) {
	return search.Apply(ownership.Todos(r.todos.Load(ctx), userID), c), nil
}

// SortByOrder sorts todos by ascending order, keeping ties in place.
func SortByOrder(todos []dom.Todo) {
	slices.SortStableFunc(todos, func(a, b dom.Todo) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

func validatePatch(p dom.TodoPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return dom.Required("title")
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return &dom.ValidationError{Field: "priority", Reason: "must be low, medium or high"}
	}
	return nil
}

func applyPatch(t *dom.Todo, p dom.TodoPatch) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.SetDueDate {
		t.DueDate = p.DueDate
	}
	if p.Tags != nil {
		tags := slices.Clone(*p.Tags)
		if tags == nil {
			tags = []string{}
		}
		t.Tags = tags
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Order != nil {
		t.Order = *p.Order
	}
}
