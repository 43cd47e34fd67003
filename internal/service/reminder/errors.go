package reminder

import "errors"

// Error kinds surfaced to the synchronous caller. Handlers map these onto
// HTTP statuses; anything else wraps ErrInternal.
var (
	ErrInvalidArgument = errors.New("invalid reminder request")
	ErrNotFound        = errors.New("user not found")
	ErrInternal        = errors.New("reminder dispatch failed")
)
