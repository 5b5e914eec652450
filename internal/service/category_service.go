package service

import (
	"context"

	"github.com/charmbracelet/log"

	dom "github.com/techpark-119/Todo-App/internal/domain"
	"github.com/techpark-119/Todo-App/internal/repo"
)

type CategoryService struct {
	repo   repo.CategoryRepo
	logger *log.Logger
}

func NewCategoryService(r repo.CategoryRepo, logger *log.Logger) *CategoryService {
	return &CategoryService{repo: r, logger: orDiscard(logger)}
}

func (s *CategoryService) Create(ctx context.Context, userID, name, color string) (dom.Category, error) {
	c, err := s.repo.Create(ctx, userID, name, color)
	if err != nil {
		return dom.Category{}, err
	}
	s.logger.Debug("category created", "user", userID, "id", c.ID, "name", c.Name)
	return c, nil
}

// List returns the categories visible to the user, defaults included.
func (s *CategoryService) List(ctx context.Context, userID string) ([]dom.Category, error) {
	return s.repo.List(ctx, userID)
}
