package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/country-list-service/internal/repository"
)

func mustList(t *testing.T, names ...string) *repository.CountryList {
	t.Helper()
	l, err := repository.NewCountryList(names)
	require.NoError(t, err)
	return l
}

func TestCountryList_Window(t *testing.T) {
	l := mustList(t, "A", "B", "C", "D", "E")

	cases := []struct {
		name          string
		offset, limit int
		want          []string
	}{
		{"first_page", 0, 2, []string{"A", "B"}},
		{"middle", 1, 3, []string{"B", "C", "D"}},
		{"clamped_tail", 3, 10, []string{"D", "E"}},
		{"exact_tail", 4, 1, []string{"E"}},
		{"past_end", 5, 10, nil},
		{"far_past_end", 1 << 40, 10, nil},
		{"zero_limit", 0, 0, nil},
		{"negative_offset_clamps", -2, 1, []string{"A"}},
		{"huge_limit", 2, int(^uint(0) >> 1), []string{"C", "D", "E"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.Window(tc.offset, tc.limit))
		})
	}
}

func TestCountryList_WindowDoesNotLeakCapacity(t *testing.T) {
	l := mustList(t, "A", "B", "C")
	w := l.Window(0, 1)
	_ = append(w, "X")
	assert.Equal(t, []string{"B"}, l.Window(1, 1))
}

func TestNewCountryList_CopiesAndTrims(t *testing.T) {
	src := []string{" Chile ", "China"}
	l := mustList(t, src...)
	src[1] = "mutated"

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"Chile", "China"}, l.Window(0, 2))
}

func TestNewCountryList_RejectsBlank(t *testing.T) {
	_, err := repository.NewCountryList([]string{"Cuba", "  "})
	assert.ErrorIs(t, err, repository.ErrInvalidDataset)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "countries.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
		wantErr error
	}{
		{"array", `["Denmark","Djibouti"]`, []string{"Denmark", "Djibouti"}, nil},
		{"empty_array", `[]`, []string{}, nil},
		{"null", `null`, nil, repository.ErrInvalidDataset},
		{"object", `{"name":"Denmark"}`, nil, repository.ErrInvalidDataset},
		{"numbers", `[1,2]`, nil, repository.ErrInvalidDataset},
		{"garbage", `not json`, nil, repository.ErrInvalidDataset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repository.NewFileLoader(writeFile(t, tc.content)).Load(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFileLoader_Missing(t *testing.T) {
	_, err := repository.NewFileLoader(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrDatasetUnavailable)
}

func TestFileLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repository.NewFileLoader(writeFile(t, `["Egypt"]`)).Load(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

type stubLoader struct {
	names []string
	err   error
}

func (s stubLoader) Load(context.Context) ([]string, error) { return s.names, s.err }

func TestLoadCountryList(t *testing.T) {
	l, err := repository.LoadCountryList(context.Background(), stubLoader{names: []string{"Fiji", "Finland"}})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	boom := errors.New("boom")
	_, err = repository.LoadCountryList(context.Background(), stubLoader{err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = repository.LoadCountryList(context.Background(), stubLoader{names: []string{""}})
	assert.ErrorIs(t, err, repository.ErrInvalidDataset)
}
