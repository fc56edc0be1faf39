// Package repository defines the contact store interface and errors.
package repository

import "github.com/okian/rolo/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithSeed initializes the store with the given contacts. The slice is
// copied; callers may reuse their own.
func WithSeed(contacts []model.Contact) Option {
	return func(s *MemStore) {
		seeded := make([]model.Contact, len(contacts))
		copy(seeded, contacts)
		s.contacts = seeded
	}
}
