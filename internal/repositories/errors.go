package repositories

import "errors"

var (
	// ErrDependentRows is returned by guarded deletes when other rows
	// still reference the target entity.
	ErrDependentRows = errors.New("entity has dependent rows")

	// ErrInsufficientStock is returned by the checkout transaction when
	// a record's stock cannot cover an order line.
	ErrInsufficientStock = errors.New("insufficient stock")
)
