// Package model contains domain models passed between layers.
package model

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Contact represents one phonebook entry. Fields mirror the JSON shape
// served by /api/persons.
type Contact struct {
	ID     int    `json:"id"`     // server-assigned, immutable
	Name   string `json:"name"`   // unique among current records, exact match
	Number string `json:"number"` // free-form, no pattern validation
}

// NewContact holds the client-supplied fields of a create request,
// validated once at the boundary before reaching the store.
type NewContact struct {
	Name   string `json:"name"   validate:"required"`
	Number string `json:"number" validate:"required"`
}

// ErrMissingFields indicates a create payload without a name or number.
var ErrMissingFields = errors.New("name or number missing")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the required-field presence rules. Both name and number
// must be non-empty; no further format validation is applied.
func (n NewContact) Validate() error {
	if err := validate.Struct(n); err != nil {
		return ErrMissingFields
	}
	return nil
}
