package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection is typed access to one named collection of a Store.
type Collection[T any] struct {
	store *Store
	name  string
}

// NewCollection binds the collection called name to element type T.
func NewCollection[T any](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Load returns every record of the collection. It never fails: a missing
// collection is empty, and unreadable or undecodable content is logged and
// treated as empty too.
func (c *Collection[T]) Load(ctx context.Context) []T {
	l := c.store.lock(c.name)
	l.RLock()
	defer l.RUnlock()
	return c.load(ctx)
}

// Save replaces the collection with records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	l := c.store.lock(c.name)
	l.Lock()
	defer l.Unlock()
	return c.save(ctx, records)
}

// Update runs one load, mutate, save cycle while holding the collection's
// write lock, so concurrent updates never lose each other's changes. Unlike
// Load it does not fail open: an unreadable or undecodable collection aborts
// with ErrStorage instead of being overwritten. When fn returns an error
// nothing is written and the error is returned as is.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	l := c.store.lock(c.name)
	l.Lock()
	defer l.Unlock()

	current, err := c.decode(ctx)
	if err != nil {
		c.store.logger.Error("collection unreadable, update refused", "collection", c.name, "err", err)
		return fmt.Errorf("load %s: %w: %v", c.name, ErrStorage, err)
	}
	records, err := fn(current)
	if err != nil {
		return err
	}
	return c.save(ctx, records)
}

// Ensure writes seed when the collection has never been written. It reports
// whether the seed was written.
func (c *Collection[T]) Ensure(ctx context.Context, seed []T) (bool, error) {
	l := c.store.lock(c.name)
	l.Lock()
	defer l.Unlock()

	_, err := c.store.backend.Read(ctx, c.name)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, ErrMissing):
		c.store.logger.Warn("collection unreadable, leaving it untouched", "collection", c.name, "err", err)
		return false, nil
	}
	if seed == nil {
		seed = []T{}
	}
	if err := c.save(ctx, seed); err != nil {
		return false, err
	}
	c.store.logger.Info("collection initialised", "collection", c.name, "records", len(seed))
	return true, nil
}

func (c *Collection[T]) load(ctx context.Context) []T {
	records, err := c.decode(ctx)
	if err != nil {
		c.store.logger.Error("collection read failed, serving empty", "collection", c.name, "err", err)
		return []T{}
	}
	return records
}

// decode reads and parses the collection. A missing or blank document is
// empty, not an error.
func (c *Collection[T]) decode(ctx context.Context) ([]T, error) {
	data, err := c.store.read(ctx, c.name)
	if errors.Is(err, ErrMissing) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	return c.store.write(ctx, c.name, data)
}
