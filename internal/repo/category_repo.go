package repo

import (
	"context"
	"strings"

	dom "github.com/techpark-119/Todo-App/internal/domain"
	"github.com/techpark-119/Todo-App/internal/ownership"
	"github.com/techpark-119/Todo-App/internal/store"
)

// CategoryRepo is create-only: categories are never updated or deleted.
type CategoryRepo interface {
	Create(ctx context.Context, userID, name, color string) (dom.Category, error)
	List(ctx context.Context, userID string) ([]dom.Category, error)
	Owned(ctx context.Context, userID string) ([]dom.Category, error)
}

var _ CategoryRepo = (*CollectionCategoryRepo)(nil)

type CollectionCategoryRepo struct {
	categories *store.Collection[dom.Category]
	opts       options
}

func NewCategoryRepo(s *store.Store, opts ...Option) *CollectionCategoryRepo {
	return &CollectionCategoryRepo{
		categories: store.NewCollection[dom.Category](s, CategoriesCollection),
		opts:       buildOptions(opts),
	}
}

// Init seeds the default categories the first time the store is used.
func (r *CollectionCategoryRepo) Init(ctx context.Context) error {
	_, err := r.categories.Ensure(ctx, dom.DefaultCategories())
	return err
}

func (r *CollectionCategoryRepo) Create(ctx context.Context, userID, name, color string) (dom.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Category{}, dom.Required("name")
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = dom.DefaultCategoryColor
	}
	owner := userID
	c := dom.Category{
		ID:     r.opts.newID(),
		Name:   name,
		Color:  color,
		UserID: &owner,
	}
	err := r.categories.Update(ctx, func(all []dom.Category) ([]dom.Category, error) {
		return append(all, c), nil
	})
	if err != nil {
		return dom.Category{}, err
	}
	return c, nil
}

// List returns the user's categories and the shared defaults.
func (r *CollectionCategoryRepo) List(ctx context.Context, userID string) ([]dom.Category, error) {
	return ownership.Categories(r.categories.Load(ctx), userID), nil
}

// Owned returns only the categories userID created.
func (r *CollectionCategoryRepo) Owned(ctx context.Context, userID string) ([]dom.Category, error) {
	return ownership.OwnedCategories(r.categories.Load(ctx), userID), nil
}
