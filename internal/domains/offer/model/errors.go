package model

import "errors"

var (
	ErrOfferNotFound   = errors.New("daily offer not found")
	ErrInvalidDateSpan = errors.New("offer end date must not be before its start date")
)
