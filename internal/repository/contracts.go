package repository

import (
	"context"
)

// Loader fetches the raw country names once at startup.
// Implementations return names in the order they must be served.
type Loader interface {
	Load(ctx context.Context) ([]string, error)
}

// LoadCountryList runs the loader and wraps its output into an immutable list.
func LoadCountryList(ctx context.Context, l Loader) (*CountryList, error) {
	names, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewCountryList(names)
}
