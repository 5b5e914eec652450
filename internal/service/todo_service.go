package service

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	dom "github.com/techpark-119/Todo-App/internal/domain"
	"github.com/techpark-119/Todo-App/internal/repo"
	"github.com/techpark-119/Todo-App/internal/search"
	"github.com/techpark-119/Todo-App/internal/utils"
)

// CreateTodoInput is a new todo as submitted by a client. Tags is a
// comma-separated list; TagList, when non-nil, is taken as already split and
// wins over Tags.
type CreateTodoInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	DueDate     *time.Time
	Tags        string
	TagList     []string
}

func (in CreateTodoInput) tags() []string {
	if in.TagList != nil {
		return in.TagList
	}
	return utils.SplitTags(in.Tags)
}

type TodoService struct {
	repo   repo.TodoRepo
	logger *log.Logger
}

func NewTodoService(r repo.TodoRepo, logger *log.Logger) *TodoService {
	return &TodoService{repo: r, logger: orDiscard(logger)}
}

func (s *TodoService) Create(ctx context.Context, userID string, in CreateTodoInput) (dom.Todo, error) {
	priority, err := dom.ParsePriority(in.Priority)
	if err != nil {
		return dom.Todo{}, err
	}
	t, err := s.repo.Create(ctx, userID, dom.NewTodo{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Priority:    priority,
		DueDate:     in.DueDate,
		Tags:        in.tags(),
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.logger.Debug("todo created", "user", userID, "id", t.ID, "order", t.Order)
	return t, nil
}

func (s *TodoService) Get(ctx context.Context, userID, id string) (dom.Todo, error) {
	return s.repo.Get(ctx, userID, id)
}

// List returns the user's todos sorted for display.
func (s *TodoService) List(ctx context.Context, userID string) ([]dom.Todo, error) {
	return s.repo.List(ctx, userID)
}

func (s *TodoService) Update(ctx context.Context, userID, id string, patch dom.TodoPatch) (dom.Todo, error) {
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		return dom.Todo{}, err
	}
	s.logger.Debug("todo updated", "user", userID, "id", id)
	return t, nil
}

// Complete marks a todo as done.
func (s *TodoService) Complete(ctx context.Context, userID, id string) (dom.Todo, error) {
	done := true
	return s.Update(ctx, userID, id, dom.TodoPatch{Completed: &done})
}

func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Debug("todo deleted", "user", userID, "id", id)
	return nil
}

func (s *TodoService) Reorder(ctx context.Context, userID string, ids []string) error {
	if err := s.repo.Reorder(ctx, userID, ids); err != nil {
		return err
	}
	s.logger.Debug("todos reordered", "user", userID, "count", len(ids))
	return nil
}

func (s *TodoService) Search(ctx context.Context, userID string, q search.Query) ([]dom.Todo, error) {
	c, err := search.Parse(q)
	if err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, userID, c)
}

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}
