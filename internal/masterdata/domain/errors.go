package domain

import "errors"

var (
	ErrInvalidContactEmail = errors.New("contact email is invalid")
	ErrCustomerIDRequired  = errors.New("customer ID is required")
)
