// Package repository defines the contact store interface and errors.
package repository

import (
	"context"

	"github.com/okian/rolo/internal/domain/model"
)

// Store provides read/write access to the contact collection. It is the
// only mutation surface over the shared state; no ambient global exists.
type Store interface {
	// List returns all contacts in append order. The returned slice is a
	// snapshot and never mutates after being returned.
	List(ctx context.Context) []model.Contact

	// Get returns the contact with the given id.
	// Returns ErrNotFound if no contact has that id.
	Get(ctx context.Context, id int) (model.Contact, error)

	// Create validates name uniqueness, assigns the next id, and appends
	// a new contact. Returns ErrNameExists on a duplicate name.
	Create(ctx context.Context, name, number string) (model.Contact, error)

	// Count returns the number of contacts currently stored.
	Count(ctx context.Context) int
}

// Seed returns the four records the collection holds at process start.
// Ids 1-4 are fixed; the collection resets to these on restart.
func Seed() []model.Contact {
	return []model.Contact{
		{ID: 1, Name: "Arto Hellas", Number: "040-123456"},
		{ID: 2, Name: "Ada Lovelace", Number: "39-44-5323523"},
		{ID: 3, Name: "Dan Abramov", Number: "12-43-234345"},
		{ID: 4, Name: "Mary Poppendieck", Number: "39-23-6423122"},
	}
}
