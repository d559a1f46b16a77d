package model

import (
	"strings"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

// Submission is one adjudicator write: the raw input of a single test for an
// athlete on a test occasion.
type Submission struct {
	ID          string              // unique id for idempotency
	AthleteID   string              // athlete being tested
	OccasionID  string              // test occasion the result belongs to
	Measurement scoring.Measurement // typed raw input
	SubmittedBy string              // adjudicator username, may be empty
	At          time.Time           // when the test was taken
}

// Validate checks that the submission can be routed to a result.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.AthleteID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(s.OccasionID) == "" {
		return ErrMissingOccasion
	}
	if s.Measurement == nil {
		return ErrMissingInput
	}
	return nil
}
