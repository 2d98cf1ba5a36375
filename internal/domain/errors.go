package domain

import "errors"

// Core error taxonomy. Every failure is scoped to the operation that raised
// it; callers match with errors.Is and decide how to surface it.
var (
	ErrUnknownShift      = errors.New("unknown shift")
	ErrInvalidHeadcount  = errors.New("invalid headcount")
	ErrOutOfRange        = errors.New("value out of range")
	ErrMalformedInterval = errors.New("malformed interval")
	ErrMissingColumn     = errors.New("missing column")
)
