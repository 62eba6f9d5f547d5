package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileLoader reads a JSON array of strings from disk.
type FileLoader struct {
	Path string
}

func NewFileLoader(path string) *FileLoader { return &FileLoader{Path: path} }

func (f *FileLoader) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrDatasetUnavailable, f.Path, err)
		}
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDataset, f.Path, err)
	}
	if names == nil {
		// a literal null decodes without error
		return nil, fmt.Errorf("%w: %s: expected a JSON array", ErrInvalidDataset, f.Path)
	}
	return names, nil
}
