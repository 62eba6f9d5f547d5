package repository

import (
	"fmt"
	"strings"
)

// CountryList is the immutable, process-wide dataset. It is built once at startup
// and only read afterwards, so it is safe for concurrent use without locking.
type CountryList struct {
	names []string
}

// NewCountryList copies names into a new list. Every name must be non-blank;
// surrounding whitespace is trimmed.
func NewCountryList(names []string) (*CountryList, error) {
	out := make([]string, len(names))
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrInvalidDataset, i)
		}
		out[i] = n
	}
	return &CountryList{names: out}, nil
}

// Len reports the number of countries.
func (l *CountryList) Len() int { return len(l.names) }

// Window returns the names in [offset, offset+limit) clipped to the list bounds.
// The result shares the backing array but has its capacity capped, so appending
// to it never writes into the dataset.
func (l *CountryList) Window(offset, limit int) []string {
	n := len(l.names)
	if offset < 0 {
		offset = 0
	}
	if offset >= n || limit <= 0 {
		return nil
	}
	end := n
	if limit < n-offset {
		end = offset + limit
	}
	return l.names[offset:end:end]
}
