package repository

import (
	"context"
	"sync"
)

// MemoryStateRepository is an in-memory implementation of StateRepository.
// State does not survive restarts; used for tests and as the fallback when
// a configured backend fails to initialize.
type MemoryStateRepository struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStateRepository creates a new in-memory state repository.
func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{
		entries: make(map[string][]byte),
	}
}

// Get retrieves the value stored under key, or nil if the key is absent.
func (r *MemoryStateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.entries[key]
	if !exists {
		return nil, nil
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Set stores value under key, replacing any previous value.
func (r *MemoryStateRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	r.entries[key] = valueCopy
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (r *MemoryStateRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}

// Close is a no-op for the in-memory repository.
func (r *MemoryStateRepository) Close() error {
	return nil
}

// Ensure MemoryStateRepository implements StateRepository
var _ StateRepository = (*MemoryStateRepository)(nil)
