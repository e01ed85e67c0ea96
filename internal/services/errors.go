package services

import "errors"

// Error kinds returned by the service layer. Handlers check these with
// errors.Is to pick the response status; absence of an entity on plain
// lookups is signalled by a nil result instead.
var (
	// ErrNotFound marks operations whose target id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrGroupNotFound rejects a record mutation whose referenced group
	// does not exist.
	ErrGroupNotFound = errors.New("the referenced group does not exist")

	// ErrGenreNotFound rejects a group mutation whose referenced music
	// genre does not exist.
	ErrGenreNotFound = errors.New("the referenced music genre does not exist")

	// ErrHasDependents blocks a delete while other entities still
	// reference the target.
	ErrHasDependents = errors.New("entity has dependent records")

	// ErrStockExceeded rejects a stock decrease greater than the
	// available stock.
	ErrStockExceeded = errors.New("the decrease cannot be greater than the available stock")

	// ErrStockConflict reports that concurrent adjustments kept
	// invalidating the read stock value until retries ran out.
	ErrStockConflict = errors.New("stock was modified concurrently, try again")

	// ErrRecordDiscontinued rejects adding a discontinued record to a cart.
	ErrRecordDiscontinued = errors.New("the record is discontinued")

	// ErrEmptyCart rejects checking out an empty cart.
	ErrEmptyCart = errors.New("the cart is empty")

	// ErrUsernameTaken and ErrEmailTaken reject duplicate registrations.
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrInvalidCredentials rejects a failed login without revealing
	// whether the username exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
