package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "vivere-estoque/pkg/errors"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateConstraintError turns postgres constraint violations into
// API-level errors so controllers answer 409 instead of 500. Any other
// error passes through unchanged.
func translateConstraintError(err error, fkMessage, uniqueMessage string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return apperrors.NewConflictError(fkMessage)
	case pgUniqueViolation:
		return apperrors.NewConflictError(uniqueMessage)
	}
	return err
}
