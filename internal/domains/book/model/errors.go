package model

import "errors"

var (
	// Not found
	ErrBookNotFound = errors.New("book not found")

	// Conflict
	ErrISBNTaken = errors.New("a book with this ISBN already exists")

	// Invalid state
	ErrNoStockAvailability = errors.New("cannot mark a book available while its stock is zero")
	ErrInsufficientStock   = errors.New("insufficient stock")
)
