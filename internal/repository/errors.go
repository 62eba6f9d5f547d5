package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Dataset errors surfaced by loaders. Both are fatal at startup.
var (
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	ErrInvalidDataset     = errors.New("invalid dataset")
)

// MapPgError translates the Postgres codes that mean "the dataset is not there"
// into ErrDatasetUnavailable. Everything else passes through.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn, pgerrcode.InvalidCatalogName:
			return errors.Join(ErrDatasetUnavailable, err)
		}
	}
	return err
}
