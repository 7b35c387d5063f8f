package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-content-keeper/models"
)

type memoryCollectionStore[T models.Record] struct {
	mu      sync.RWMutex
	records []T
}

// NewMemoryCollectionStore returns a process-local store. It starts empty and
// is discarded with the process.
func NewMemoryCollectionStore[T models.Record]() CollectionStore[T] {
	return &memoryCollectionStore[T]{}
}

func (m *memoryCollectionStore[T]) Load(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.records), nil
}

func (m *memoryCollectionStore[T]) Save(_ context.Context, records []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = slices.Clone(records)
	return nil
}

func (m *memoryCollectionStore[T]) Drop(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
	return nil
}
