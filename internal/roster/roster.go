// Package roster reads TOML rosters of athletes and their raw test inputs,
// scores them offline and posts them to a running server.
package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

// Roster is one test occasion: when it happened and what every athlete did.
type Roster struct {
	Occasion string    `toml:"occasion"`
	Date     time.Time `toml:"date"`
	Athletes []Entry   `toml:"athletes"`
}

// Entry is one athlete of a roster and the raw inputs measured for them.
// Tests left out of the file were not measured.
type Entry struct {
	ID        string         `toml:"id"`
	Name      string         `toml:"name"`
	Surname   string         `toml:"surname"`
	TeamID    string         `toml:"team_id"`
	Gender    scoring.Gender `toml:"gender"`
	BirthDate time.Time      `toml:"birth_date"`
	HeightCM  float64        `toml:"height_cm"`
	WeightKG  float64        `toml:"weight_kg"`

	Ladder     *scoring.LadderTimes         `toml:"ladder"`
	Brace      *scoring.BraceTimes          `toml:"brace"`
	Hexagon    *scoring.HexagonTimes        `toml:"hexagon"`
	Medicimbal *scoring.MedicimbalThrows    `toml:"medicimbal"`
	TripleJump *scoring.TripleJumpDistances `toml:"triple_jump"`
	Jet        *scoring.JetShuttle          `toml:"jet"`
	BeepTest   *scoring.BeepTestRun         `toml:"beep_test"`
	YTest      *scoring.YBalance            `toml:"y_test"`
}

// Load decodes the roster at path. Unknown keys are rejected so that a
// misspelled test name is not silently ignored.
func Load(path string) (*Roster, error) {
	var r Roster
	md, err := toml.DecodeFile(path, &r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidRoster, strings.Join(keys, ", "))
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the occasion and every athlete.
func (r *Roster) Validate() error {
	if strings.TrimSpace(r.Occasion) == "" {
		return fmt.Errorf("%w: missing occasion", ErrInvalidRoster)
	}
	seen := make(map[string]struct{}, len(r.Athletes))
	for i := range r.Athletes {
		a := r.Athletes[i].Athlete()
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%w: athlete %d: %w", ErrInvalidRoster, i+1, err)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: duplicate athlete %q", ErrInvalidRoster, a.ID)
		}
		seen[a.ID] = struct{}{}
	}
	return nil
}

// TestedOn returns the occasion date, or now when the roster has none.
func (r *Roster) TestedOn(now time.Time) time.Time {
	if r.Date.IsZero() {
		return now
	}
	return r.Date
}

// Athlete returns the athlete profile of e.
func (e *Entry) Athlete() model.Athlete {
	return model.Athlete{
		ID:        e.ID,
		Name:      e.Name,
		Surname:   e.Surname,
		TeamID:    e.TeamID,
		Gender:    e.Gender,
		BirthDate: e.BirthDate,
		HeightCM:  e.HeightCM,
		WeightKG:  e.WeightKG,
	}
}

// Measurements returns the recorded inputs in test order.
func (e *Entry) Measurements() []scoring.Measurement {
	var out []scoring.Measurement
	if e.Ladder != nil {
		out = append(out, *e.Ladder)
	}
	if e.Brace != nil {
		out = append(out, *e.Brace)
	}
	if e.Hexagon != nil {
		out = append(out, *e.Hexagon)
	}
	if e.Medicimbal != nil {
		out = append(out, *e.Medicimbal)
	}
	if e.TripleJump != nil {
		out = append(out, *e.TripleJump)
	}
	if e.Jet != nil {
		out = append(out, *e.Jet)
	}
	if e.BeepTest != nil {
		out = append(out, *e.BeepTest)
	}
	if e.YTest != nil {
		out = append(out, *e.YTest)
	}
	return out
}

// Score scores every athlete offline, with their age on the occasion date.
// Results keep roster order.
func (r *Roster) Score(now time.Time) ([]model.Result, error) {
	on := r.TestedOn(now)
	results := make([]model.Result, 0, len(r.Athletes))
	for i := range r.Athletes {
		e := &r.Athletes[i]
		a := e.Athlete()
		res := model.NewResult(a.ID, r.Occasion)
		for _, m := range e.Measurements() {
			if _, err := res.Record(a.ProfileOn(on), m); err != nil {
				return nil, fmt.Errorf("athlete %s: %s: %w", a.ID, m.TestType(), err)
			}
		}
		res.UpdatedAt = on
		results = append(results, *res)
	}
	return results, nil
}
