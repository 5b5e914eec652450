// Package store persists whole collections of records as single documents.
//
// A Backend moves raw documents; Store adds per-collection locking, read
// coalescing and the fail-open read policy; Collection gives typed access.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrMissing is returned by Backend.Read for a collection that was never written.
	ErrMissing = errors.New("collection missing")
	// ErrStorage wraps every failed write.
	ErrStorage = errors.New("storage failure")
)

// Backend stores one opaque document per collection name.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	Close() error
}

// Store serialises access to the collections of a Backend.
type Store struct {
	backend Backend
	logger  *log.Logger

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
	reads singleflight.Group
}

// New returns a Store over b. A nil logger discards log output.
func New(b Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		backend: b,
		logger:  logger,
		locks:   make(map[string]*sync.RWMutex),
	}
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) lock(name string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[name] = l
	}
	return l
}

// read fetches a document; concurrent readers of the same collection share
// one backend call, which ignores any single caller's cancellation. Callers
// must hold the collection's read or write lock until it returns.
func (s *Store) read(ctx context.Context, name string) ([]byte, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.reads.Do(name, func() (interface{}, error) {
		return s.backend.Read(shared, name)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *Store) write(ctx context.Context, name string, data []byte) error {
	if err := s.backend.Write(ctx, name, data); err != nil {
		s.logger.Error("collection write failed", "collection", name, "err", err)
		return fmt.Errorf("save %s: %w: %v", name, ErrStorage, err)
	}
	return nil
}
