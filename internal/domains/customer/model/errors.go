package model

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")

	ErrEmailTaken = errors.New("a customer with this email already exists")
	ErrPhoneTaken = errors.New("a customer with this phone number already exists")

	// ErrCustomerResolution means every resolution strategy failed.
	ErrCustomerResolution = errors.New("could not create or resolve customer")
)
