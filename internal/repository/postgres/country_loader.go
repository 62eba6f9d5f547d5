package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/maxviazov/country-list-service/internal/repository"
)

// querier is the slice of pgxpool.Pool the loader needs; pgx.Tx satisfies it too.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CountryLoader reads the dataset from a table shaped as
//
//	CREATE TABLE countries (id serial PRIMARY KEY, name text NOT NULL);
//
// Rows are served in id order.
type CountryLoader struct {
	q     querier
	table string
}

// NewCountryLoader accepts a plain or schema-qualified table name ("public.countries").
func NewCountryLoader(q querier, table string) (*CountryLoader, error) {
	if q == nil {
		return nil, errors.New("querier is required")
	}
	table = strings.TrimSpace(table)
	if table == "" {
		return nil, errors.New("table name is required")
	}
	return &CountryLoader{q: q, table: table}, nil
}

var _ repository.Loader = (*CountryLoader)(nil)

func (l *CountryLoader) Load(ctx context.Context) ([]string, error) {
	rows, err := l.q.Query(ctx, l.query())
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", l.table, repository.MapPgError(err))
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", l.table, repository.MapPgError(err))
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (l *CountryLoader) query() string {
	ident := pgx.Identifier(strings.Split(l.table, "."))
	return "SELECT name FROM " + ident.Sanitize() + " ORDER BY id"
}
