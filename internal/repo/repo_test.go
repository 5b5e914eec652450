package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/techpark-119/Todo-App/internal/store"
)

var testEpoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// fakeClock advances one second on every call.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func sequentialIDs(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newTestStore(t *testing.T) (*store.Store, *store.MemoryBackend) {
	t.Helper()
	b := store.NewMemoryBackend()
	s := store.New(b, nil)
	t.Cleanup(func() { _ = s.Close() })
	return s, b
}

func testOptions(prefix string) []Option {
	clock := &fakeClock{t: testEpoch}
	return []Option{WithClock(clock.Now), WithIDGenerator(sequentialIDs(prefix))}
}

func mustInit(t *testing.T, inits ...func(context.Context) error) {
	t.Helper()
	for _, fn := range inits {
		require.NoError(t, fn(context.Background()))
	}
}
