package model

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/domain/composite"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

// Raw keeps the last raw input recorded for each test.
type Raw struct {
	Ladder     *scoring.LadderTimes         `json:"ladder,omitempty"`
	Brace      *scoring.BraceTimes          `json:"brace,omitempty"`
	Hexagon    *scoring.HexagonTimes        `json:"hexagon,omitempty"`
	Medicimbal *scoring.MedicimbalThrows    `json:"medicimbal,omitempty"`
	TripleJump *scoring.TripleJumpDistances `json:"triple_jump,omitempty"`
	Jet        *scoring.JetShuttle          `json:"jet,omitempty"`
	BeepTest   *scoring.BeepTestRun         `json:"beep_test,omitempty"`
	YTest      *scoring.YBalance            `json:"y_test,omitempty"`
}

// Set stores m in its slot, replacing any earlier input for the same test.
func (r *Raw) Set(m scoring.Measurement) error {
	switch v := m.(type) {
	case scoring.LadderTimes:
		r.Ladder = &v
	case scoring.BraceTimes:
		r.Brace = &v
	case scoring.HexagonTimes:
		r.Hexagon = &v
	case scoring.MedicimbalThrows:
		r.Medicimbal = &v
	case scoring.TripleJumpDistances:
		r.TripleJump = &v
	case scoring.JetShuttle:
		r.Jet = &v
	case scoring.BeepTestRun:
		r.BeepTest = &v
	case scoring.YBalance:
		r.YTest = &v
	default:
		return fmt.Errorf("%w: %T", scoring.ErrInvalidMeasurement, m)
	}
	return nil
}

// Get returns the stored input for tt, or nil.
func (r Raw) Get(tt scoring.TestType) scoring.Measurement {
	switch tt {
	case scoring.Ladder:
		if r.Ladder != nil {
			return *r.Ladder
		}
	case scoring.Brace:
		if r.Brace != nil {
			return *r.Brace
		}
	case scoring.Hexagon:
		if r.Hexagon != nil {
			return *r.Hexagon
		}
	case scoring.Medicimbal:
		if r.Medicimbal != nil {
			return *r.Medicimbal
		}
	case scoring.TripleJump:
		if r.TripleJump != nil {
			return *r.TripleJump
		}
	case scoring.Jet:
		if r.Jet != nil {
			return *r.Jet
		}
	case scoring.BeepTest:
		if r.BeepTest != nil {
			return *r.BeepTest
		}
	case scoring.YTest:
		if r.YTest != nil {
			return *r.YTest
		}
	}
	return nil
}

func (r Raw) clone() Raw {
	var out Raw
	if v := r.Ladder; v != nil {
		out.Ladder = &scoring.LadderTimes{Time1: clonePtr(v.Time1), Time2: clonePtr(v.Time2)}
	}
	if v := r.Brace; v != nil {
		out.Brace = &scoring.BraceTimes{Time1: clonePtr(v.Time1), Time2: clonePtr(v.Time2)}
	}
	if v := r.Hexagon; v != nil {
		out.Hexagon = &scoring.HexagonTimes{
			Clockwise:        clonePtr(v.Clockwise),
			CounterClockwise: clonePtr(v.CounterClockwise),
		}
	}
	if v := r.Medicimbal; v != nil {
		out.Medicimbal = &scoring.MedicimbalThrows{
			Throw1: clonePtr(v.Throw1), Throw2: clonePtr(v.Throw2), Throw3: clonePtr(v.Throw3),
		}
	}
	if v := r.TripleJump; v != nil {
		out.TripleJump = &scoring.TripleJumpDistances{
			Jump1: clonePtr(v.Jump1), Jump2: clonePtr(v.Jump2), Jump3: clonePtr(v.Jump3),
		}
	}
	if v := r.Jet; v != nil {
		out.Jet = &scoring.JetShuttle{Laps: clonePtr(v.Laps), Sides: clonePtr(v.Sides)}
	}
	if v := r.BeepTest; v != nil {
		out.BeepTest = &scoring.BeepTestRun{Level: clonePtr(v.Level), Laps: clonePtr(v.Laps), MaxHR: clonePtr(v.MaxHR)}
	}
	if v := r.YTest; v != nil {
		yb := scoring.YBalance{Height: v.Height}
		for i, reach := range v.Reaches {
			yb.Reaches[i] = clonePtr(reach)
		}
		out.YTest = &yb
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Derived holds the intermediate values computed from raw inputs.
type Derived struct {
	JetDistance   *int     `json:"jet_distance,omitempty"`
	BeepTotalLaps *int     `json:"beep_test_total_laps,omitempty"`
	YTestIndex    *float64 `json:"y_test_index,omitempty"`
}

// Result is the scored record of one athlete on one test occasion.
type Result struct {
	AthleteID  string           `json:"athlete_id"`
	OccasionID string           `json:"occasion_id"`
	Raw        Raw              `json:"raw"`
	Scores     composite.Scores `json:"scores"`
	Derived    Derived          `json:"derived"`
	Composites composite.Set    `json:"composites"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// NewResult returns an empty result for the pair.
func NewResult(athleteID, occasionID string) *Result {
	return &Result{
		AthleteID:  athleteID,
		OccasionID: occasionID,
		Scores:     composite.Scores{},
	}
}

// Clone returns a deep copy of r that shares no pointers or maps with it.
func (r Result) Clone() Result {
	r.Raw = r.Raw.clone()
	r.Scores = maps.Clone(r.Scores)
	r.Derived = Derived{
		JetDistance:   clonePtr(r.Derived.JetDistance),
		BeepTotalLaps: clonePtr(r.Derived.BeepTotalLaps),
		YTestIndex:    clonePtr(r.Derived.YTestIndex),
	}
	r.Composites = composite.Set{
		Strength:  clonePtr(r.Composites.Strength),
		Speed:     clonePtr(r.Composites.Speed),
		Endurance: clonePtr(r.Composites.Endurance),
		Agility:   clonePtr(r.Composites.Agility),
	}
	return r
}

// Record scores m for the profile and stores it as given, then refreshes the
// composites. A y-balance height left at zero is taken from the profile at
// scoring time, so later height corrections reach it on Rescore. A measurement
// without any raw data clears the score for its test. The result is left
// unchanged on error.
func (r *Result) Record(p Profile, m scoring.Measurement) (int, error) {
	score, derived, err := evaluate(p, m)
	if err != nil {
		return 0, err
	}
	if err := r.Raw.Set(m); err != nil {
		return 0, err
	}
	if r.Scores == nil {
		r.Scores = composite.Scores{}
	}
	tt := m.TestType()
	if m.Present() {
		r.Scores[tt] = score
	} else {
		delete(r.Scores, tt)
	}
	r.setDerived(tt, derived)
	r.Composites = composite.Compute(r.Scores)
	return score, nil
}

// Rescore recomputes every score, derived value and composite from the
// stored raw inputs.
func (r *Result) Rescore(p Profile) error {
	next := NewResult(r.AthleteID, r.OccasionID)
	for _, tt := range scoring.TestTypes {
		m := r.Raw.Get(tt)
		if m == nil {
			continue
		}
		if _, err := next.Record(p, m); err != nil {
			return fmt.Errorf("rescore %s: %w", tt, err)
		}
	}
	r.Scores = next.Scores
	r.Derived = next.Derived
	r.Composites = next.Composites
	return nil
}

func evaluate(p Profile, m scoring.Measurement) (int, *float64, error) {
	m = p.Complete(m)
	score, err := scoring.Resolve(p.Age, p.Gender, m)
	if err != nil {
		return 0, nil, err
	}
	switch m.TestType() {
	case scoring.Jet, scoring.BeepTest, scoring.YTest:
		v, ok, err := scoring.Reduce(m)
		if err != nil {
			return 0, nil, err
		}
		if ok {
			return score, &v, nil
		}
	}
	return score, nil, nil
}

func (r *Result) setDerived(tt scoring.TestType, v *float64) {
	switch tt {
	case scoring.Jet:
		r.Derived.JetDistance = intPtr(v)
	case scoring.BeepTest:
		r.Derived.BeepTotalLaps = intPtr(v)
	case scoring.YTest:
		r.Derived.YTestIndex = v
	}
}

func intPtr(v *float64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// DecodeMeasurement reads the JSON payload of tt into its typed measurement.
func DecodeMeasurement(tt scoring.TestType, data []byte) (scoring.Measurement, error) {
	var (
		m   scoring.Measurement
		err error
	)
	switch tt {
	case scoring.Ladder:
		var v scoring.LadderTimes
		err = json.Unmarshal(data, &v)
		m = v
	case scoring.Brace:
		var v scoring.BraceTimes
		err = json.Unmarshal(data, &v)
		m = v
	case scoring.Hexagon:
		var v scoring.HexagonTimes
		err = json.Unmarshal(data, &v)
		m = v
	case scoring.Medicimbal:
		var v scoring.MedicimbalThrows
		err = json.Unmarshal(data, &v)
		m = v
	case scoring.TripleJump:
		var v scoring.TripleJumpDistances
		err = json.Unmarshal(data, &v)
		m = v
	case scoring.Jet:
		var v scoring.JetShuttle
		err = json.Unmarshal(data, &v)
		m = v
	case scoring.BeepTest:
		var v scoring.BeepTestRun
		err = json.Unmarshal(data, &v)
		m = v
	case scoring.YTest:
		var v scoring.YBalance
		err = json.Unmarshal(data, &v)
		m = v
	default:
		return nil, fmt.Errorf("%w: %d", scoring.ErrUnknownTestType, int(tt))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", scoring.ErrInvalidMeasurement, tt, err)
	}
	return m, nil
}
