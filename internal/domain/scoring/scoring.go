// Package scoring converts raw field-test measurements into age and gender
// normalized scores using fixed threshold tables.
//
// Every table row has 20 thresholds, so scores run from 0 to 20. The package
// holds no mutable state and is safe for concurrent use.
package scoring

import "fmt"

// Resolve scores a measurement for an athlete of the given age and gender.
//
// Age is clamped into [MinAge, MaxAge]. A measurement with no recorded
// attempts scores 0 without error; callers that need to tell "not measured"
// apart from a floored result check Measurement.Present.
func Resolve(age int, g Gender, m Measurement) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("%w: nil measurement", ErrInvalidMeasurement)
	}
	row, dir, err := lookup(m.TestType(), g, age)
	if err != nil {
		return 0, err
	}
	value, ok, err := m.reduce()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return scan(row, dir, value), nil
}

// Quick scores a single externally chosen value, skipping the best-attempt
// reduction. It backs live feedback while an athlete is still being tested.
// The value is a time for ladder, brace and hexagon; a distance for
// medicimbal, triple_jump and jet; total laps for beep_test; and a reach
// index for y_test.
func Quick(tt TestType, age int, g Gender, value float64) (int, error) {
	row, dir, err := lookup(tt, g, age)
	if err != nil {
		return 0, err
	}
	if err := checkValue(value); err != nil {
		return 0, err
	}
	return scan(row, dir, value), nil
}

// Compute is the tag-keyed entry point: it decodes positional raw values
// (see Decode) and resolves the resulting measurement.
func Compute(tt TestType, age int, g Gender, values ...*float64) (int, error) {
	m, err := Decode(tt, values)
	if err != nil {
		return 0, err
	}
	return Resolve(age, g, m)
}

// scan finds the bucket for value. Ties go to the first matching index.
func scan(row *[thresholdCount]float64, dir direction, value float64) int {
	switch dir {
	case lowerIsBetter:
		for i, t := range row {
			if value >= t {
				return i
			}
		}
		return len(row)
	case higherIsBetter:
		for i, t := range row {
			if value <= t {
				return i
			}
		}
		return len(row)
	default:
		for i := range row {
			if value >= row[len(row)-1-i] {
				return len(row) - i
			}
		}
		// Below the lowest index in the band scores 0, never the top
		// bucket, so the score stays monotonic in the index.
		return 0
	}
}

// Ptr returns a pointer to v. Handy when building measurements in place.
func Ptr[T int | float64](v T) *T {
	return &v
}
