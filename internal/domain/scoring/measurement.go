package scoring

import (
	"fmt"
	"math"
)

// Measurement is the raw input of one test. Each test type has exactly one
// implementation, so the set is closed to this package.
type Measurement interface {
	// TestType reports which table the measurement is scored against.
	TestType() TestType
	// Present reports whether enough raw data exists to score the test.
	Present() bool

	reduce() (value float64, ok bool, err error)
}

// LadderTimes holds the two agility-ladder attempts in seconds.
type LadderTimes struct {
	Time1 *float64 `json:"time_1,omitempty" toml:"time_1"`
	Time2 *float64 `json:"time_2,omitempty" toml:"time_2"`
}

func (LadderTimes) TestType() TestType { return Ladder }
func (m LadderTimes) Present() bool { return anyPresent(m.Time1, m.Time2) }
func (m LadderTimes) reduce() (float64, bool, error) { return fastest(m.Time1, m.Time2) }

// BraceTimes holds the two brace-drill attempts in seconds.
type BraceTimes struct {
	Time1 *float64 `json:"time_1,omitempty" toml:"time_1"`
	Time2 *float64 `json:"time_2,omitempty" toml:"time_2"`
}

func (BraceTimes) TestType() TestType { return Brace }
func (m BraceTimes) Present() bool { return anyPresent(m.Time1, m.Time2) }
func (m BraceTimes) reduce() (float64, bool, error) { return fastest(m.Time1, m.Time2) }

// HexagonTimes holds the clockwise and counter-clockwise hexagon runs in seconds.
type HexagonTimes struct {
	Clockwise        *float64 `json:"time_cw,omitempty" toml:"time_cw"`
	CounterClockwise *float64 `json:"time_ccw,omitempty" toml:"time_ccw"`
}

func (HexagonTimes) TestType() TestType { return Hexagon }
func (m HexagonTimes) Present() bool { return anyPresent(m.Clockwise, m.CounterClockwise) }
func (m HexagonTimes) reduce() (float64, bool, error) {
	return fastest(m.Clockwise, m.CounterClockwise)
}

// MedicimbalThrows holds three medicine-ball throws in metres.
type MedicimbalThrows struct {
	Throw1 *float64 `json:"throw_1,omitempty" toml:"throw_1"`
	Throw2 *float64 `json:"throw_2,omitempty" toml:"throw_2"`
	Throw3 *float64 `json:"throw_3,omitempty" toml:"throw_3"`
}

func (MedicimbalThrows) TestType() TestType { return Medicimbal }
func (m MedicimbalThrows) Present() bool { return anyPresent(m.Throw1, m.Throw2, m.Throw3) }
func (m MedicimbalThrows) reduce() (float64, bool, error) {
	return farthest(m.Throw1, m.Throw2, m.Throw3)
}

// TripleJumpDistances holds three triple-jump attempts in metres.
type TripleJumpDistances struct {
	Jump1 *float64 `json:"distance_1,omitempty" toml:"distance_1"`
	Jump2 *float64 `json:"distance_2,omitempty" toml:"distance_2"`
	Jump3 *float64 `json:"distance_3,omitempty" toml:"distance_3"`
}

func (TripleJumpDistances) TestType() TestType { return TripleJump }
func (m TripleJumpDistances) Present() bool { return anyPresent(m.Jump1, m.Jump2, m.Jump3) }
func (m TripleJumpDistances) reduce() (float64, bool, error) {
	return farthest(m.Jump1, m.Jump2, m.Jump3)
}

// JetShuttle is the endurance shuttle run: full laps plus extra sides.
// A missing component counts as zero once the other is recorded.
type JetShuttle struct {
	Laps  *int `json:"laps,omitempty" toml:"laps"`
	Sides *int `json:"sides,omitempty" toml:"sides"`
}

func (JetShuttle) TestType() TestType { return Jet }
func (m JetShuttle) Present() bool { return m.Laps != nil || m.Sides != nil }

// Distance returns the shuttle distance in metres.
func (m JetShuttle) Distance() (int, error) {
	laps, sides := intOr(m.Laps), intOr(m.Sides)
	if laps < 0 || sides < 0 {
		return 0, fmt.Errorf("%w: negative jet laps or sides", ErrInvalidMeasurement)
	}
	return ShuttleDistance(laps, sides), nil
}

func (m JetShuttle) reduce() (float64, bool, error) {
	if !m.Present() {
		return 0, false, nil
	}
	d, err := m.Distance()
	if err != nil {
		return 0, false, err
	}
	return float64(d), true, nil
}

// BeepTestRun is the level reached and laps completed within it.
// MaxHR is recorded alongside and does not affect the score.
type BeepTestRun struct {
	Level *int `json:"level,omitempty" toml:"level"`
	Laps  *int `json:"laps,omitempty" toml:"laps"`
	MaxHR *int `json:"max_hr,omitempty" toml:"max_hr"`
}

func (BeepTestRun) TestType() TestType { return BeepTest }
func (m BeepTestRun) Present() bool { return m.Level != nil }

// TotalLaps returns the laps run across all levels.
func (m BeepTestRun) TotalLaps() (int, error) {
	laps := intOr(m.Laps)
	if laps < 0 {
		return 0, fmt.Errorf("%w: negative beep test laps", ErrInvalidMeasurement)
	}
	return BeepTotalLaps(intOr(m.Level), laps)
}

func (m BeepTestRun) reduce() (float64, bool, error) {
	if !m.Present() {
		return 0, false, nil
	}
	total, err := m.TotalLaps()
	if err != nil {
		return 0, false, err
	}
	return float64(total), true, nil
}

// Reach slots of a y-balance test, in storage order.
const (
	LeftLegFront = iota
	LeftLegLeft
	LeftLegRight
	RightLegFront
	RightLegLeft
	RightLegRight
	LeftArmLeft
	LeftArmFront
	LeftArmBack
	RightArmRight
	RightArmFront
	RightArmBack
)

// YBalance is the athlete height in centimetres plus twelve directional reaches.
type YBalance struct {
	Height  float64              `json:"height,omitempty" toml:"height"`
	Reaches [ReachCount]*float64 `json:"reaches" toml:"reaches"`
}

func (YBalance) TestType() TestType { return YTest }

// Present reports whether all twelve reaches were recorded.
func (m YBalance) Present() bool {
	for _, r := range m.Reaches {
		if r == nil {
			return false
		}
	}
	return true
}

// Index computes the reach index. All reaches must be present.
func (m YBalance) Index() (float64, error) {
	if !m.Present() {
		return 0, fmt.Errorf("%w: y-balance needs %d reaches", ErrInvalidMeasurement, ReachCount)
	}
	var reaches [ReachCount]float64
	for i, r := range m.Reaches {
		if err := checkValue(*r); err != nil {
			return 0, err
		}
		reaches[i] = *r
	}
	return ReachIndex(m.Height, reaches)
}

func (m YBalance) reduce() (float64, bool, error) {
	if !m.Present() {
		return 0, false, nil
	}
	idx, err := m.Index()
	if err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

// Reduce returns the single raw value a measurement is scored with: the best
// attempt, the shuttle distance, total beep laps or the reach index.
// ok is false when nothing was measured.
func Reduce(m Measurement) (value float64, ok bool, err error) {
	if m == nil {
		return 0, false, fmt.Errorf("%w: nil measurement", ErrInvalidMeasurement)
	}
	return m.reduce()
}

// Decode builds the typed measurement for tt from positional raw values, nil
// meaning not measured. Arity per test: ladder, brace, hexagon take two times;
// medicimbal and triple_jump three distances; jet laps and sides; beep_test
// level and laps; y_test height followed by twelve reaches.
func Decode(tt TestType, values []*float64) (Measurement, error) {
	want := arity(tt)
	if want == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTestType, int(tt))
	}
	if len(values) != want {
		return nil, fmt.Errorf("%w: %s takes %d values, got %d", ErrInvalidMeasurement, tt, want, len(values))
	}
	switch tt {
	case Ladder:
		return LadderTimes{Time1: values[0], Time2: values[1]}, nil
	case Brace:
		return BraceTimes{Time1: values[0], Time2: values[1]}, nil
	case Hexagon:
		return HexagonTimes{Clockwise: values[0], CounterClockwise: values[1]}, nil
	case Medicimbal:
		return MedicimbalThrows{Throw1: values[0], Throw2: values[1], Throw3: values[2]}, nil
	case TripleJump:
		return TripleJumpDistances{Jump1: values[0], Jump2: values[1], Jump3: values[2]}, nil
	case Jet:
		laps, err := wholeNumber(values[0])
		if err != nil {
			return nil, err
		}
		sides, err := wholeNumber(values[1])
		if err != nil {
			return nil, err
		}
		return JetShuttle{Laps: laps, Sides: sides}, nil
	case BeepTest:
		level, err := wholeNumber(values[0])
		if err != nil {
			return nil, err
		}
		laps, err := wholeNumber(values[1])
		if err != nil {
			return nil, err
		}
		return BeepTestRun{Level: level, Laps: laps}, nil
	default:
		m := YBalance{}
		if values[0] != nil {
			m.Height = *values[0]
		}
		copy(m.Reaches[:], values[1:])
		return m, nil
	}
}

func arity(tt TestType) int {
	switch tt {
	case Ladder, Brace, Hexagon, Jet, BeepTest:
		return 2
	case Medicimbal, TripleJump:
		return 3
	case YTest:
		return 1 + ReachCount
	default:
		return 0
	}
}

func anyPresent(vals ...*float64) bool {
	for _, v := range vals {
		if v != nil {
			return true
		}
	}
	return false
}

// fastest picks the lowest recorded time.
func fastest(vals ...*float64) (float64, bool, error) {
	return best(vals, func(a, b float64) bool { return a < b })
}

// farthest picks the largest recorded distance.
func farthest(vals ...*float64) (float64, bool, error) {
	return best(vals, func(a, b float64) bool { return a > b })
}

func best(vals []*float64, better func(a, b float64) bool) (float64, bool, error) {
	var (
		out   float64
		found bool
	)
	for _, v := range vals {
		if v == nil {
			continue
		}
		if err := checkValue(*v); err != nil {
			return 0, false, err
		}
		if !found || better(*v, out) {
			out = *v
			found = true
		}
	}
	return out, found, nil
}

func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMeasurement, v)
	}
	return nil
}

func wholeNumber(v *float64) (*int, error) {
	if v == nil {
		return nil, nil
	}
	if err := checkValue(*v); err != nil {
		return nil, err
	}
	if *v != math.Trunc(*v) {
		return nil, fmt.Errorf("%w: %v is not a whole number", ErrInvalidMeasurement, *v)
	}
	n := int(*v)
	return &n, nil
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
