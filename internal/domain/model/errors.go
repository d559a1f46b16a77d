package model

import "errors"

// Validation errors for domain records.
var (
	ErrMissingID       = errors.New("missing id")
	ErrMissingName     = errors.New("missing name")
	ErrMissingBirth    = errors.New("missing birth date")
	ErrInvalidBody     = errors.New("invalid body measurements")
	ErrMissingOccasion = errors.New("missing occasion id")
	ErrMissingInput    = errors.New("missing measurement")
)
