package session

import "sync"

// TokenStore abstracts where the bearer token persists between app loads.
// The UI shell owns real persistence; the engine only needs load/save/clear.
type TokenStore interface {
	Load() (string, bool)
	Save(token string) error
	Clear() error
}

// MemoryTokenStore is a concurrency-safe in-memory TokenStore
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore creates a new in-memory token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Load returns the stored token and whether one exists
func (s *MemoryTokenStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Save stores the token
func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the stored token
func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
