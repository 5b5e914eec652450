package store

import (
	"context"
	"sync"
)

var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend keeps documents in process memory. Used by tests and by
// STORE_DRIVER=memory for throwaway runs.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (m *MemoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[name]
	if !ok {
		return nil, ErrMissing
	}
	out := make([]byte, len(d))
	copy(out, d)
	return out, nil
}

func (m *MemoryBackend) Write(_ context.Context, name string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.mu.Lock()
	m.docs[name] = buf
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) Close() error { return nil }
