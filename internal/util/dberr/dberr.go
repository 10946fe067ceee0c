package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the internal classification of a data-store error. Mutators never
// branch on raw postgres codes, only on kinds.
type Kind string

const (
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindValidation       Kind = "VALIDATION"
	KindUnknown          Kind = "UNKNOWN"
)

const (
	pgInsufficientPrivilege = "42501"
	pgUniqueViolation       = "23505"
	pgForeignKeyViolation   = "23503"
	pgNotNullViolation      = "23502"
	pgCheckViolation        = "23514"
	pgStringTooLong         = "22001"
)

// Classify maps a raw store error to a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInsufficientPrivilege:
			return KindPermissionDenied
		case pgUniqueViolation:
			return KindConflict
		case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation, pgStringTooLong:
			return KindValidation
		}
	}

	return KindUnknown
}

// UserMessage converts a store error into a message safe to surface to the
// end user. The action is a short phrase like "create client".
func UserMessage(action string, err error) string {
	switch Classify(err) {
	case KindPermissionDenied:
		return fmt.Sprintf(
			"You do not have permission to %s. Please contact your administrator.",
			action,
		)
	case KindNotFound:
		return fmt.Sprintf("Failed to %s: record not found", action)
	case KindConflict:
		return fmt.Sprintf("Failed to %s: a conflicting record already exists", action)
	case KindValidation:
		return fmt.Sprintf("Failed to %s: the submitted data is invalid", action)
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Hint != "" {
			return fmt.Sprintf("Failed to %s: %s. %s", action, pgErr.Message, pgErr.Hint)
		}

		return fmt.Sprintf("Failed to %s: %s", action, err.Error())
	}
}
