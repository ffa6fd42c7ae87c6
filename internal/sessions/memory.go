package sessions

import "sync"

// MemoryStore keeps active books in a process-local map. State is lost on
// restart. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	books map[int64]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{books: make(map[int64]string)}
}

func (s *MemoryStore) Get(userID int64) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	title, ok := s.books[userID]
	return title, ok, nil
}

func (s *MemoryStore) Set(userID int64, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[userID] = title
	return nil
}

func (s *MemoryStore) Clear(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.books, userID)
	return nil
}
