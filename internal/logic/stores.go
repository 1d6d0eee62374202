package logic

import (
	"sync"

	"bookshelf/internal/domain"
)

// MemoryCatalogStore is an in-memory implementation of CatalogStore.
// The snapshot is never mutated in place, only replaced.
type MemoryCatalogStore struct {
	mu    sync.RWMutex
	books []domain.Book
}

// NewMemoryCatalogStore creates a new memory-based catalog store
func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{}
}

func (s *MemoryCatalogStore) All() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Book, len(s.books))
	copy(result, s.books)
	return result
}

func (s *MemoryCatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

func (s *MemoryCatalogStore) Replace(books []domain.Book) {
	snapshot := make([]domain.Book, len(books))
	copy(snapshot, books)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = snapshot
}
