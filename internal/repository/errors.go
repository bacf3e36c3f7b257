package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = pgx.ErrNoRows
	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("duplicate key")
	// ErrMissingReference reports a foreign key pointing at no row.
	ErrMissingReference = errors.New("referenced row does not exist")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrDuplicate
	case pgForeignKeyViolation:
		return ErrMissingReference
	case pgInvalidTextRepr:
		// malformed uuid literal; no row can match it
		return ErrNotFound
	}
	return err
}
