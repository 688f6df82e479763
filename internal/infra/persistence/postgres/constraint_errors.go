package postgres

import (
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for constraint errors. The connection is opened with
// TranslateError, so driver codes arrive as gorm sentinel errors.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// writeError converts a failed insert or update into a domain error.
func writeError(err error, duplicate *domainerrors.BaseError, details string) error {
	switch {
	case isUniqueConstraintViolation(err) && duplicate != nil:
		return errors.WithStack(duplicate.WithDetails(details))
	case isForeignKeyConstraintViolation(err):
		return errors.WithStack(domainerrors.ErrNotFound.WithDetails(details + ": invalid user reference"))
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
