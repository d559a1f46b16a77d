// Package composite folds per-test scores into the four category scores
// reported for every athlete and occasion.
package composite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

// ErrUnknownCategory is returned for a name that is not a category.
var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the composite scores.
type Category int

// Categories in report order.
const (
	Strength Category = iota
	Speed
	Endurance
	Agility
)

// Categories lists every category.
var Categories = []Category{Strength, Speed, Endurance, Agility}

var categoryNames = [...]string{
	Strength:  "strength",
	Speed:     "speed",
	Endurance: "endurance",
	Agility:   "agility",
}

// pairs are the two tests each category averages.
var pairs = [...][2]scoring.TestType{
	Strength:  {scoring.Medicimbal, scoring.TripleJump},
	Speed:     {scoring.Ladder, scoring.Hexagon},
	Endurance: {scoring.BeepTest, scoring.Jet},
	Agility:   {scoring.Brace, scoring.YTest},
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a lower-case name such as "speed" to its Category.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Inputs returns the two test types averaged into c.
func (c Category) Inputs() (scoring.TestType, scoring.TestType) {
	p := pairs[c]
	return p[0], p[1]
}

// Of returns the category a test contributes to.
func Of(tt scoring.TestType) (Category, bool) {
	for c, p := range pairs {
		if p[0] == tt || p[1] == tt {
			return Category(c), true
		}
	}
	return 0, false
}

// Scores holds per-test scores. A missing key means the test was not measured.
type Scores map[scoring.TestType]int

// Set is the four composites. A nil field means one of its inputs is missing.
type Set struct {
	Strength  *float64 `json:"strength"`
	Speed     *float64 `json:"speed"`
	Endurance *float64 `json:"endurance"`
	Agility   *float64 `json:"agility"`
}

// Get returns the composite for c.
func (s Set) Get(c Category) *float64 {
	switch c {
	case Strength:
		return s.Strength
	case Speed:
		return s.Speed
	case Endurance:
		return s.Endurance
	case Agility:
		return s.Agility
	default:
		return nil
	}
}

func (s *Set) set(c Category, v *float64) {
	switch c {
	case Strength:
		s.Strength = v
	case Speed:
		s.Speed = v
	case Endurance:
		s.Endurance = v
	case Agility:
		s.Agility = v
	}
}

// Complete reports whether all four composites are available.
func (s Set) Complete() bool {
	return s.Strength != nil && s.Speed != nil && s.Endurance != nil && s.Agility != nil
}

// Compute derives every composite from scores. It is pure, so calling it
// again on the same scores yields the same set.
func Compute(scores Scores) Set {
	var out Set
	for _, c := range Categories {
		a, b := c.Inputs()
		sa, okA := scores[a]
		sb, okB := scores[b]
		if !okA || !okB {
			continue
		}
		mean := float64(sa+sb) / 2
		out.set(c, &mean)
	}
	return out
}
