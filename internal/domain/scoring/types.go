package scoring

import (
	"fmt"
	"strings"
)

// Age bounds covered by the score tables. Ages outside are clamped.
const (
	MinAge = 10
	MaxAge = 20
)

// MaxScore is the best bucket a raw value can reach.
const MaxScore = thresholdCount

// TestType identifies one of the eight field tests.
type TestType int

// Test types, in the order results are usually presented.
const (
	Ladder TestType = iota
	Brace
	Hexagon
	Medicimbal
	TripleJump
	Jet
	BeepTest
	YTest
)

// TestTypes lists every test type.
var TestTypes = []TestType{Ladder, Brace, Hexagon, Medicimbal, TripleJump, Jet, BeepTest, YTest}

var testTypeTags = map[TestType]string{
	Ladder:     "ladder",
	Brace:      "brace",
	Hexagon:    "hexagon",
	Medicimbal: "medicimbal",
	TripleJump: "triple_jump",
	Jet:        "jet",
	BeepTest:   "beep_test",
	YTest:      "y_test",
}

// String returns the wire tag, e.g. "triple_jump".
func (t TestType) String() string {
	if tag, ok := testTypeTags[t]; ok {
		return tag
	}
	return fmt.Sprintf("TestType(%d)", int(t))
}

// Valid reports whether t is one of the known test types.
func (t TestType) Valid() bool {
	_, ok := testTypeTags[t]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (t TestType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTestType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TestType) UnmarshalText(b []byte) error {
	parsed, err := ParseTestType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTestType maps a wire tag to its TestType.
func ParseTestType(s string) (TestType, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for tt, known := range testTypeTags {
		if known == tag {
			return tt, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTestType, s)
}

// Gender selects the male or female tables.
type Gender string

// Supported genders.
const (
	Male   Gender = "M"
	Female Gender = "F"
)

// Validate returns ErrInvalidGender unless g is Male or Female.
func (g Gender) Validate() error {
	switch g {
	case Male, Female:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGender, string(g))
	}
}

// ParseGender accepts "M" or "F" (case-insensitive).
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	if err := g.Validate(); err != nil {
		return "", err
	}
	return g, nil
}

// UnmarshalText implements encoding.TextUnmarshaler through ParseGender. An
// empty value decodes to the zero Gender.
func (g *Gender) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*g = ""
		return nil
	}
	parsed, err := ParseGender(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ClampAge pins age into [MinAge, MaxAge].
func ClampAge(age int) int {
	if age < MinAge {
		return MinAge
	}
	if age > MaxAge {
		return MaxAge
	}
	return age
}
