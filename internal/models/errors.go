package models

import "errors"

// Validation error kinds returned by Author setters.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrOutOfRange    = errors.New("value out of range")
	ErrIDAlreadySet  = errors.New("author id already set")
)
