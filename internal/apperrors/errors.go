package apperrors

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrWalletNotFound indicates that a wallet with the given ID does not exist.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrCryptoNotFound indicates that a crypto with the given symbol does not exist.
	ErrCryptoNotFound = errors.New("crypto not found")

	// ErrFiatNotFound indicates that a fiat currency with the given code does not exist.
	ErrFiatNotFound = errors.New("fiat currency not found")

	// ErrMovementNotFound indicates that a movement with the given ID does not exist.
	ErrMovementNotFound = errors.New("movement not found")

	// ErrHoldingNotFound indicates that no holding exists for the given wallet and asset.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrDefaultPortfolioNotFound indicates that no portfolio is flagged as the default.
	ErrDefaultPortfolioNotFound = errors.New("default portfolio not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrPortfolioInUse indicates that a portfolio cannot be deleted because
	// movements or holdings still reference it.
	ErrPortfolioInUse = errors.New("portfolio is in use")

	// ErrWalletInUse indicates that a wallet cannot be deleted because
	// movements or holdings still reference it.
	ErrWalletInUse = errors.New("wallet is in use")

	// ErrCryptoInUse indicates that a crypto cannot be deleted because
	// movements or holdings still reference it.
	ErrCryptoInUse = errors.New("crypto is in use")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInvalidMovementType indicates that a movement type is not one of the known values.
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// IsConstraintViolation reports whether err is any SQLite constraint failure
// (foreign key, unique, check). The underlying driver error is left intact so
// callers can still inspect it.
func IsConstraintViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	// Extended result codes carry the primary code in the low byte.
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// IsForeignKeyViolation reports whether err is a SQLite foreign key failure,
// i.e. a delete or insert that would orphan dependent rows.
func IsForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
		code == sqlite3.SQLITE_CONSTRAINT_TRIGGER ||
		code == sqlite3.SQLITE_CONSTRAINT
}

// IsUniqueViolation reports whether err is a SQLite unique constraint failure.
func IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
