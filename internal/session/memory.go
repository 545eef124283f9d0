package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mathmaster/backend/internal/models"
)

// MemoryStore holds the slot in process memory. Used in tests and for runs
// where stay-logged-in across restarts does not matter. It still goes through
// JSON so a user that cannot serialize fails the same way as on disk.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemory() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Get(_ context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raw == nil {
		return nil, ErrEmpty
	}
	var u models.User
	if err := json.Unmarshal(s.raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MemoryStore) Set(_ context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	s.raw = nil
	s.mu.Unlock()
	return nil
}
