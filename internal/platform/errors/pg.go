package errors

// Postgres helpers: map pgx errors to ErrorCode, surface field names from
// constraint metadata, and classify retryable contention

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes this package understands
const (
	pgErrUniqueViolation           = "23505"
	pgErrForeignKeyViolation       = "23503"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidTextRepresentation = "22P02"

	pgErrSerializationFailure   = "40001"
	pgErrDeadlockDetected       = "40P01"
	pgErrLockNotAvailable       = "55P03"
	pgErrReadOnlySQLTransaction = "25006"
	pgErrCannotConnectNow       = "57P03" // startup in progress
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether the error is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsForeignKeyViolation reports whether the error is a foreign key constraint violation
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, pgErrForeignKeyViolation) }

// IsNotNullViolation reports whether the error is a not-null constraint violation
func IsNotNullViolation(err error) bool { return IsSQLState(err, pgErrNotNullViolation) }

// IsCheckViolation reports whether the error is a check constraint violation
func IsCheckViolation(err error) bool { return IsSQLState(err, pgErrCheckViolation) }

// IsSerializationFailure reports whether the error is a serialization failure
func IsSerializationFailure(err error) bool { return IsSQLState(err, pgErrSerializationFailure) }

// IsDeadlock reports whether the error is a deadlock detected error
func IsDeadlock(err error) bool { return IsSQLState(err, pgErrDeadlockDetected) }

// IsLockNotAvailable reports whether the error is a lock not available error
func IsLockNotAvailable(err error) bool { return IsSQLState(err, pgErrLockNotAvailable) }

// IsConnectionUnavailable reports whether the error is a "cannot connect now" error
func IsConnectionUnavailable(err error) bool { return IsSQLState(err, pgErrCannotConnectNow) }

// DBErrorCode maps a Postgres error to an ErrorCode with an ok flag.
// !ok means err wasn't a PgError; caller may fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}

	switch pgErr.Code {
	case pgErrUniqueViolation:
		return ErrorCodeDuplicateKey, true

	case pgErrForeignKeyViolation:
		// input referenced a missing row, classify as invalid input
		return ErrorCodeInvalidArgument, true

	case pgErrNotNullViolation, pgErrCheckViolation:
		return ErrorCodeValidation, true

	case pgErrStringDataRightTruncation, pgErrInvalidTextRepresentation:
		return ErrorCodeInvalidArgument, true

	case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable:
		// retryable server-side contention
		return ErrorCodeDB, true

	case pgErrReadOnlySQLTransaction, pgErrCannotConnectNow:
		return ErrorCodeUnavailable, true
	}

	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with a mapped ErrorCode and message.
// Nil errors pass through as nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromPostgresf is the formatted variant of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// AttachFieldFromPg enriches an error with a field name derived from PgError
// metadata, preferring ColumnName over the last token of ConstraintName
// (monitored_regions_alert_email_check -> check is skipped, email-ish tokens win).
// Returns the original error if no field can be inferred
func AttachFieldFromPg(err error) error {
	var pgErr *pgconn.PgError
	if !stderrs.As(Root(err), &pgErr) {
		return err
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(err, col)
	}
	if c := strings.TrimSpace(pgErr.ConstraintName); c != "" {
		tok := c
		if i := strings.LastIndex(c, "_"); i >= 0 && i+1 < len(c) {
			tok = c[i+1:]
		}
		if tok != "" && tok != "key" {
			return WithField(err, tok)
		}
	}
	return err
}

// FromPostgresWithField wraps the error like FromPostgres then attempts to
// attach a field name discoverable from the PgError metadata
func FromPostgresWithField(err error, msg string) error {
	return AttachFieldFromPg(FromPostgres(err, msg))
}

// IsRetryable reports whether a database error represents a transient condition
// worth retrying. Handles both structured *pgconn.PgError codes and the generic
// pgx text seen on commit (e.g. "commit unexpectedly resulted in rollback")
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// local cancellations and timeouts are the caller's business
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}

	root := Root(err)

	var pgErr *pgconn.PgError
	if stderrs.As(root, &pgErr) {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable:
			return true
		default:
			return false
		}
	}

	// text patterns emitted by pgx/driver on commit/abort or lock/timeout cases
	s := strings.ToLower(root.Error())
	switch {
	case strings.Contains(s, "commit unexpectedly resulted in rollback"),
		strings.Contains(s, "deadlock detected"),
		strings.Contains(s, "could not serialize access"),
		strings.Contains(s, "serialization failure"),
		strings.Contains(s, "canceling statement due to statement timeout"),
		strings.Contains(s, "canceling statement due to lock timeout"),
		strings.Contains(s, "could not obtain lock on row"),
		strings.Contains(s, "terminating connection due to administrator command"):
		return true
	default:
		return false
	}
}
