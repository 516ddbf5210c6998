package model

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")

	ErrEmptyItems        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrOrderNumberTaken  = errors.New("order number already exists")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")
)
