package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/DaalbuCZ/Hermes/internal/domain/composite"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

// Standing is one athlete's place on an occasion.
type Standing struct {
	Rank      int     `json:"rank"`
	AthleteID string  `json:"athlete_id"`
	Value     float64 `json:"value"`
}

// Standings ranks the athletes of an occasion by a composite category
// ("speed") or by a single test ("ladder"). Athletes without a value for it
// are left out. Equal values share a rank.
func (s *Service) Standings(ctx context.Context, occasionID, by string) ([]Standing, error) {
	value, err := standingValue(by)
	if err != nil {
		return nil, err
	}
	results, err := s.Results(ctx, occasionID)
	if err != nil {
		return nil, fmt.Errorf("service.standings: %w", err)
	}

	entries := make([]Standing, 0, len(results))
	for i := range results {
		if v, ok := value(&results[i]); ok {
			entries = append(entries, Standing{AthleteID: results[i].AthleteID, Value: v})
		}
	}
	sortStandings(entries)
	assignRanksWithTies(entries)
	return entries, nil
}

func standingValue(by string) (func(*model.Result) (float64, bool), error) {
	if c, err := composite.ParseCategory(by); err == nil {
		return func(r *model.Result) (float64, bool) {
			v := r.Composites.Get(c)
			if v == nil {
				return 0, false
			}
			return *v, true
		}, nil
	}
	tt, err := scoring.ParseTestType(by)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a category nor a test", composite.ErrUnknownCategory, by)
	}
	return func(r *model.Result) (float64, bool) {
		v, ok := r.Scores[tt]
		return float64(v), ok
	}, nil
}

// sortStandings orders by value descending, then athlete id ascending.
func sortStandings(entries []Standing) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].AthleteID < entries[j].AthleteID
	})
}

// assignRanksWithTies gives equal values the same rank; the next distinct
// value takes the following rank.
func assignRanksWithTies(entries []Standing) {
	rank := 0
	for i := range entries {
		if i == 0 || entries[i].Value != entries[i-1].Value {
			rank++
		}
		entries[i].Rank = rank
	}
}
