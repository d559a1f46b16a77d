package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
	ErrMissingKey        = errors.New("missing athlete or occasion id")
)
