package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/techpark-119/Todo-App/internal/repo"
	"github.com/techpark-119/Todo-App/internal/store"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	todos      *repo.CollectionTodoRepo
	categories *repo.CollectionCategoryRepo
	users      *repo.CollectionUserRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	var (
		mu sync.Mutex
		n  int
	)
	opts := []repo.Option{
		repo.WithClock(func() time.Time { return fixedNow }),
		repo.WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
	s := store.New(store.NewMemoryBackend(), nil)
	f := fixture{
		todos:      repo.NewTodoRepo(s, opts...),
		categories: repo.NewCategoryRepo(s, opts...),
		users:      repo.NewUserRepo(s, opts...),
	}
	ctx := context.Background()
	require.NoError(t, f.users.Init(ctx))
	require.NoError(t, f.todos.Init(ctx))
	require.NoError(t, f.categories.Init(ctx))
	return f
}
