package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrUnknownTestType    = errors.New("unknown test type")
	ErrInvalidGender      = errors.New("unsupported gender")
	ErrInvalidLevel       = errors.New("invalid beep test level")
	ErrInvalidHeight      = errors.New("height must be positive")
	ErrInvalidMeasurement = errors.New("invalid measurement")
)
