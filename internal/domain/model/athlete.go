// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

// Athlete is a tested person. Age is derived from BirthDate on the day of
// each test occasion.
type Athlete struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Surname   string         `json:"surname"`
	TeamID    string         `json:"team_id,omitempty"`
	Gender    scoring.Gender `json:"gender"`
	BirthDate time.Time      `json:"birth_date"`
	HeightCM  float64        `json:"height_cm"`
	WeightKG  float64        `json:"weight_kg"`
}

// Team groups athletes sharing a team id.
type Team struct {
	ID       string `json:"id"`
	Athletes int    `json:"athletes"`
}

// FullName joins name and surname.
func (a Athlete) FullName() string {
	return strings.TrimSpace(a.Name + " " + a.Surname)
}

// AgeOn returns the athlete's age in whole years on day t.
func (a Athlete) AgeOn(t time.Time) int {
	by, bm, bd := a.BirthDate.Date()
	ty, tm, td := t.Date()
	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// Validate checks the fields scoring depends on.
func (a Athlete) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrMissingName
	}
	if a.BirthDate.IsZero() {
		return ErrMissingBirth
	}
	if a.HeightCM < 0 || a.WeightKG < 0 {
		return fmt.Errorf("%w: height %v, weight %v", ErrInvalidBody, a.HeightCM, a.WeightKG)
	}
	return a.Gender.Validate()
}

// Profile is what scoring reads from an athlete on one test day.
type Profile struct {
	Age      int
	Gender   scoring.Gender
	HeightCM float64
}

// ProfileOn returns the athlete's scoring profile on day t.
func (a Athlete) ProfileOn(t time.Time) Profile {
	return Profile{Age: a.AgeOn(t), Gender: a.Gender, HeightCM: a.HeightCM}
}

// Complete fills inputs the athlete record already holds. A y-balance run
// recorded without a height takes the athlete's height.
func (p Profile) Complete(m scoring.Measurement) scoring.Measurement {
	if yb, ok := m.(scoring.YBalance); ok && yb.Height == 0 && p.HeightCM > 0 {
		yb.Height = p.HeightCM
		return yb
	}
	return m
}

// Resolve scores m against the profile's table.
func (p Profile) Resolve(m scoring.Measurement) (int, error) {
	return scoring.Resolve(p.Age, p.Gender, p.Complete(m))
}
