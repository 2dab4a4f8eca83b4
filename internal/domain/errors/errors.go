package errors

import "errors"

var (
	// ErrNotFound covers both a truly absent resource and one outside
	// the requester's scope; callers must not be able to tell apart.
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidStatus      = errors.New("unrecognized order status")
	ErrConflict           = errors.New("conflicting concurrent write")
)
