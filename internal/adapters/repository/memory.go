package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/pkg/metrics"
)

type resultKey struct {
	athleteID  string
	occasionID string
}

// MemoryStore is an in-memory Store guarded by a single RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	athletes map[string]model.Athlete
	results  map[resultKey]model.Result
	opts     options

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore constructs a memory store and starts its metrics updater,
// which stops when ctx is done or Close is called.
func NewMemoryStore(ctx context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		athletes: make(map[string]model.Athlete),
		results:  make(map[resultKey]model.Result),
		opts:     defaultOptions(),
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.startMetricsUpdater(ctx)
	return s
}

// Close stops the background goroutine.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
	return nil
}

// PutAthlete implements Store.PutAthlete.
func (s *MemoryStore) PutAthlete(ctx context.Context, a model.Athlete) error {
	if a.ID == "" {
		return ErrMissingKey
	}
	s.mu.Lock()
	s.athletes[a.ID] = a
	s.mu.Unlock()
	return nil
}

// Athlete implements Store.Athlete.
func (s *MemoryStore) Athlete(ctx context.Context, id string) (model.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.athletes[id]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Athlete{}, ErrNotFound
	}
	return a, nil
}

// Athletes implements Store.Athletes.
func (s *MemoryStore) Athletes(ctx context.Context, teamID string) ([]model.Athlete, error) {
	s.mu.RLock()
	out := make([]model.Athlete, 0, len(s.athletes))
	for _, a := range s.athletes {
		if teamID == "" || a.TeamID == teamID {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()
	slices.SortFunc(out, func(a, b model.Athlete) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Update implements Store.Update. fn runs under the write lock on a copy;
// the copy replaces the stored result only when fn succeeds.
func (s *MemoryStore) Update(ctx context.Context, athleteID, occasionID string, fn UpdateFunc) (model.Result, error) {
	if athleteID == "" || occasionID == "" {
		return model.Result{}, ErrMissingKey
	}
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryUpdateLatency(float64(time.Since(start).Milliseconds()))
	}()

	key := resultKey{athleteID: athleteID, occasionID: occasionID}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.results[key]
	if !ok {
		current = *model.NewResult(athleteID, occasionID)
	}
	next := cloneResult(current)
	if err := fn(&next); err != nil {
		return model.Result{}, err
	}
	next.AthleteID, next.OccasionID = athleteID, occasionID
	next.UpdatedAt = s.opts.now().UTC()
	s.results[key] = next
	return cloneResult(next), nil
}

// Result implements Store.Result.
func (s *MemoryStore) Result(ctx context.Context, athleteID, occasionID string) (model.Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[resultKey{athleteID: athleteID, occasionID: occasionID}]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Result{}, ErrNotFound
	}
	return cloneResult(r), nil
}

// Results implements Store.Results.
func (s *MemoryStore) Results(ctx context.Context, occasionID string) ([]model.Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	out := make([]model.Result, 0, len(s.results))
	for k, r := range s.results {
		if occasionID == "" || k.occasionID == occasionID {
			out = append(out, cloneResult(r))
		}
	}
	s.mu.RUnlock()
	sortResults(out)
	return out, nil
}

// AthleteResults implements Store.AthleteResults.
func (s *MemoryStore) AthleteResults(ctx context.Context, athleteID string) ([]model.Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	var out []model.Result
	for k, r := range s.results {
		if k.athleteID == athleteID {
			out = append(out, cloneResult(r))
		}
	}
	s.mu.RUnlock()
	sortResults(out)
	return out, nil
}

// TeamResults implements Store.TeamResults.
func (s *MemoryStore) TeamResults(ctx context.Context, teamID, occasionID string) ([]model.Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	var out []model.Result
	for k, r := range s.results {
		if occasionID != "" && k.occasionID != occasionID {
			continue
		}
		if a, ok := s.athletes[k.athleteID]; ok && a.TeamID == teamID {
			out = append(out, cloneResult(r))
		}
	}
	s.mu.RUnlock()
	sortResults(out)
	return out, nil
}

// Teams implements Store.Teams. Athletes without a team are left out.
func (s *MemoryStore) Teams(ctx context.Context) ([]model.Team, error) {
	s.mu.RLock()
	counts := make(map[string]int)
	for _, a := range s.athletes {
		if a.TeamID != "" {
			counts[a.TeamID]++
		}
	}
	s.mu.RUnlock()

	out := make([]model.Team, 0, len(counts))
	for id, n := range counts {
		out = append(out, model.Team{ID: id, Athletes: n})
	}
	slices.SortFunc(out, func(a, b model.Team) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Count implements Store.Count.
func (s *MemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

func (s *MemoryStore) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.opts.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.updateMetrics()
			}
		}
	}()
}

func (s *MemoryStore) updateMetrics() {
	s.mu.RLock()
	athletes, results := len(s.athletes), len(s.results)
	s.mu.RUnlock()
	metrics.UpdateAthletesTotal(athletes)
	metrics.UpdateResultsTotal(results)
}

func sortResults(rs []model.Result) {
	slices.SortFunc(rs, func(a, b model.Result) int {
		if c := cmp.Compare(a.OccasionID, b.OccasionID); c != 0 {
			return c
		}
		return cmp.Compare(a.AthleteID, b.AthleteID)
	})
}
