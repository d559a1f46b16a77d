// Package repository persists athletes and their scored results.
package repository

import (
	"context"

	"github.com/DaalbuCZ/Hermes/internal/domain/composite"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
)

// UpdateFunc mutates a result inside the store's critical section. Returning
// an error aborts the update and leaves the stored result untouched.
type UpdateFunc func(r *model.Result) error

// Store provides read/write access to athletes and results.
type Store interface {
	// PutAthlete creates or replaces an athlete.
	PutAthlete(ctx context.Context, a model.Athlete) error
	// Athlete returns ErrNotFound if the athlete is unknown.
	Athlete(ctx context.Context, id string) (model.Athlete, error)
	// Athletes lists athletes ordered by id, optionally filtered by team.
	Athletes(ctx context.Context, teamID string) ([]model.Athlete, error)

	// Update runs fn on the result for (athleteID, occasionID), creating an
	// empty one first if needed, and stores what fn leaves behind. Updates
	// to the same pair are serialized.
	Update(ctx context.Context, athleteID, occasionID string, fn UpdateFunc) (model.Result, error)
	// Result returns ErrNotFound if nothing was recorded for the pair.
	Result(ctx context.Context, athleteID, occasionID string) (model.Result, error)
	// Results lists results of one occasion, or all results when occasionID
	// is empty, ordered by occasion then athlete.
	Results(ctx context.Context, occasionID string) ([]model.Result, error)
	// AthleteResults lists one athlete's results ordered by occasion.
	AthleteResults(ctx context.Context, athleteID string) ([]model.Result, error)
	// TeamResults lists the results of a team's athletes, of one occasion or
	// all of them, ordered by occasion then athlete.
	TeamResults(ctx context.Context, teamID, occasionID string) ([]model.Result, error)
	// Teams lists the teams athletes belong to, ordered by id.
	Teams(ctx context.Context) ([]model.Team, error)

	// Count returns the number of stored results.
	Count(ctx context.Context) int
	Close() error
}

func cloneResult(r model.Result) model.Result {
	c := r.Clone()
	if c.Scores == nil {
		c.Scores = composite.Scores{}
	}
	return c
}
