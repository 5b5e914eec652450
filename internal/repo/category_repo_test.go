package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/techpark-119/Todo-App/internal/domain"
)

func newCategoryRepo(t *testing.T) *CollectionCategoryRepo {
	t.Helper()
	s, _ := newTestStore(t)
	r := NewCategoryRepo(s, testOptions("c")...)
	mustInit(t, r.Init)
	return r
}

func TestCategoryRepo_InitSeedsDefaultsOnce(t *testing.T) {
	r := newCategoryRepo(t)
	ctx := context.Background()

	got, err := r.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, dom.DefaultCategories(), got)

	require.NoError(t, r.Init(ctx))
	got, err = r.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestCategoryRepo_CreateAndVisibility(t *testing.T) {
	r := newCategoryRepo(t)
	ctx := context.Background()

	c, err := r.Create(ctx, "alice", "  Garden ", "")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "Garden", c.Name)
	assert.Equal(t, dom.DefaultCategoryColor, c.Color)
	require.NotNil(t, c.UserID)
	assert.Equal(t, "alice", *c.UserID)
	assert.False(t, c.IsDefault())

	_, err = r.Create(ctx, "bob", "Music", "#123456")
	require.NoError(t, err)

	alice, err := r.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 5)
	assert.Equal(t, "Garden", alice[4].Name)

	bob, err := r.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bob, 5)
	assert.Equal(t, "Music", bob[4].Name)
	assert.Equal(t, "#123456", bob[4].Color)

	owned, err := r.Owned(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []dom.Category{c}, owned)
}

func TestCategoryRepo_CreateRequiresName(t *testing.T) {
	r := newCategoryRepo(t)
	_, err := r.Create(context.Background(), "alice", "  ", "#fff")
	assert.ErrorIs(t, err, dom.ErrValidation)
}
