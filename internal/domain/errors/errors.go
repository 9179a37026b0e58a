package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("unknown status")
	ErrIncompleteBooking  = errors.New("incomplete booking draft")
	ErrEmptyOrder         = errors.New("order has no products")
	ErrInvalidQuantity    = errors.New("invalid product quantity")
	ErrInvalidDelivery    = errors.New("unknown delivery method")
	ErrInvalidRole        = errors.New("invalid role")
)
