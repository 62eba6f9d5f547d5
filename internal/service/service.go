// Package service holds the pagination rules that sit between the HTTP layer
// and the immutable country list: parameter parsing, range validation and slicing.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maxviazov/country-list-service/internal/model"
)

// Marker errors for rejected page requests (both map to HTTP 400).
// Details for the client travel in *PageError.
var (
	ErrInvalidOffset = errors.New("invalid offset")
	ErrInvalidLimit  = errors.New("invalid limit")
)

// PageError carries the client-facing details of a rejected page request.
// Exactly one of ValidRange or MaxAllowed is meaningful, depending on Kind.
type PageError struct {
	Kind       error
	Message    string
	ValidRange string
	MaxAllowed int
}

func (e *PageError) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }
func (e *PageError) Unwrap() error { return e.Kind }

// AsPageError extracts the details of a rejected page request, if err is one.
func AsPageError(err error) (*PageError, bool) {
	var pe *PageError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// CountryService serves pages of the country list.
type CountryService interface {
	// Total is the size of the whole list.
	Total() int
	// ValidatePage rejects pages outside the accepted ranges with a *PageError.
	ValidatePage(p model.Page) error
	// List returns the page p. An offset past the end is not an error.
	List(ctx context.Context, p model.Page) (model.CountryPage, error)
}
