package repository

import (
	"context"
	"sync"

	"github.com/okian/rolo/internal/domain/model"
	"github.com/okian/rolo/pkg/metrics"
)

// Mutex-guarded, in-memory Store implementation.
//
// Writes are copy-on-append: Create builds a fresh slice and swaps the
// reference, so snapshots handed out by List never mutate underneath a
// reader. The whole create sequence (duplicate-name check, next-id
// computation, append) holds one lock, which makes id assignment and the
// uniqueness check atomic together.

// MemStore holds the contact collection for the process lifetime.
type MemStore struct {
	mu       sync.RWMutex
	contacts []model.Contact
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty store, then applies options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{}
	for _, opt := range opts {
		opt(s)
	}
	metrics.UpdateContactCount(len(s.contacts))
	return s
}

// List returns the current snapshot of the collection in append order.
func (s *MemStore) List(_ context.Context) []model.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contacts
}

// Get returns the contact with the given id, or ErrNotFound.
func (s *MemStore) Get(_ context.Context, id int) (model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Contact{}, ErrNotFound
}

// Create appends a new contact with the next id. Returns ErrNameExists
// when an existing contact already has the exact same name; the collection
// is left unchanged on failure.
func (s *MemStore) Create(_ context.Context, name, number string) (model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contacts {
		if c.Name == name {
			return model.Contact{}, ErrNameExists
		}
	}

	c := model.Contact{ID: s.nextID(), Name: name, Number: number}

	next := make([]model.Contact, len(s.contacts), len(s.contacts)+1)
	copy(next, s.contacts)
	s.contacts = append(next, c)

	metrics.RecordContactCreated()
	metrics.UpdateContactCount(len(s.contacts))
	return c, nil
}

// Count returns the number of contacts currently stored.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

// nextID is 1 for an empty collection, otherwise 1 + max(ids).
// Ids are never reused; callers must hold the write lock.
func (s *MemStore) nextID() int {
	maxID := 0
	for _, c := range s.contacts {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}
