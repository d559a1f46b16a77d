package roster

import "errors"

// Error constants.
var (
	ErrLoadRoster     = errors.New("failed to load roster")
	ErrInvalidRoster  = errors.New("invalid roster")
	ErrUnexpectedCode = errors.New("unexpected response status")
)
