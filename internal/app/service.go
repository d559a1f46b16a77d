// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DaalbuCZ/Hermes/internal/adapters/mq/queue"
	"github.com/DaalbuCZ/Hermes/internal/adapters/mq/worker"
	"github.com/DaalbuCZ/Hermes/internal/adapters/repository"
	"github.com/DaalbuCZ/Hermes/internal/domain/dedupe"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	"github.com/DaalbuCZ/Hermes/pkg/logger"
	"github.com/DaalbuCZ/Hermes/pkg/metrics"
)

// Receipt acknowledges a submission.
type Receipt struct {
	ID        string `json:"id"`
	Duplicate bool   `json:"duplicate"`
}

// QuickRequest scores one externally chosen value. When AthleteID is set the
// athlete's gender and current age replace Age and Gender.
type QuickRequest struct {
	Test      scoring.TestType
	AthleteID string
	Age       int
	Gender    scoring.Gender
	Value     float64
}

// RecalcReport summarizes a Recalculate run.
type RecalcReport struct {
	Results int `json:"results"`
	Changed int `json:"changed"`
	Skipped int `json:"skipped"`
}

// Service scores submissions and serves results.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	deduper dedupe.Deduper
	queue   *queue.InMemoryQueue
	pool    *worker.Pool

	workerCount int
	queueSize   int
	dedupeSize  int
	now         func() time.Time

	started bool
	logger  logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   10000,
		dedupeSize:  50000,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the deduper, queue and worker pool.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.logger.Info(ctx, "starting scoring service...")

	if s.store == nil {
		s.store = repository.NewMemoryStore(ctx)
		s.logger.Info(ctx, "using in-memory store")
	}
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = worker.NewPool(s.workerCount, s.queue, s, worker.WithPoolLogger(s.logger.Named("pool")))
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "scoring service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop drains queued submissions and closes the store.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.logger.Info(ctx, "stopping scoring service...")

	var errs []error
	if err := s.pool.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("worker pool: %w", err))
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}

	s.started = false
	s.logger.Info(ctx, "scoring service stopped")
	return errors.Join(errs...)
}

func (s *Service) running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Submit validates a submission and queues it for scoring. The submission
// id is generated when empty and used for idempotency: a repeated id is
// acknowledged as a duplicate without being queued again. ErrBackpressure is
// returned when the queue is full.
func (s *Service) Submit(ctx context.Context, sub model.Submission) (Receipt, error) { //nolint:gocritic // hugeParam: passed by value like the queue payload
	const op = "service.submit"
	if !s.running() {
		return Receipt{}, ErrNotStarted
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.At.IsZero() {
		sub.At = s.now()
	}
	if err := s.check(ctx, sub); err != nil {
		metrics.RecordSubmission("rejected")
		return Receipt{ID: sub.ID}, fmt.Errorf("%s: %w", op, err)
	}

	if s.deduper.SeenAndRecord(ctx, sub.ID) {
		metrics.RecordSubmission("duplicate")
		s.logger.Debug(ctx, "duplicate submission", logger.String("id", sub.ID))
		return Receipt{ID: sub.ID, Duplicate: true}, nil
	}
	if err := s.queue.Enqueue(ctx, sub); err != nil {
		s.deduper.Unrecord(ctx, sub.ID)
		if errors.Is(err, queue.ErrFull) {
			metrics.RecordSubmission("backpressure")
			return Receipt{ID: sub.ID}, ErrBackpressure
		}
		metrics.RecordSubmission("rejected")
		return Receipt{ID: sub.ID}, fmt.Errorf("%s: %w", op, err)
	}
	metrics.RecordSubmission("accepted")
	return Receipt{ID: sub.ID}, nil
}

// check rejects submissions the worker could never apply: unknown athletes
// and inputs the engine refuses (bad level, bad height, negative values).
func (s *Service) check(ctx context.Context, sub model.Submission) error { //nolint:gocritic // hugeParam
	if err := sub.Validate(); err != nil {
		return err
	}
	a, err := s.store.Athlete(ctx, sub.AthleteID)
	if err != nil {
		return err
	}
	_, err = a.ProfileOn(sub.At).Resolve(sub.Measurement)
	return err
}

// Apply scores a submission for its athlete's profile on the test date and
// records it. Scores, derived values and composites change together.
func (s *Service) Apply(ctx context.Context, sub model.Submission) error { //nolint:gocritic // hugeParam
	const op = "service.apply"
	start := time.Now()

	a, err := s.store.Athlete(ctx, sub.AthleteID)
	if err != nil {
		metrics.RecordSubmission("failed")
		return fmt.Errorf("%s: %w", op, err)
	}
	p := a.ProfileOn(sub.At)

	var score int
	_, err = s.store.Update(ctx, sub.AthleteID, sub.OccasionID, func(r *model.Result) error {
		var err error
		score, err = r.Record(p, sub.Measurement)
		return err
	})
	if err != nil {
		metrics.RecordScoringError(errorKind(err))
		metrics.RecordSubmission("failed")
		return fmt.Errorf("%s: %w", op, err)
	}

	tt := sub.Measurement.TestType()
	metrics.RecordScoreResolved(tt.String())
	metrics.RecordCompositeRecompute()
	metrics.RecordScoringLatency(float64(time.Since(start).Milliseconds()))
	s.logger.Debug(ctx, "submission applied",
		logger.String("id", sub.ID),
		logger.String("athlete", sub.AthleteID),
		logger.String("occasion", sub.OccasionID),
		logger.String("test", tt.String()),
		logger.Int("age", p.Age),
		logger.Int("score", score),
	)
	return nil
}

// QuickScore scores a single value without storing anything.
func (s *Service) QuickScore(ctx context.Context, req QuickRequest) (int, error) {
	age, g := req.Age, req.Gender
	if req.AthleteID != "" {
		store, err := s.repo()
		if err != nil {
			return 0, err
		}
		a, err := store.Athlete(ctx, req.AthleteID)
		if err != nil {
			return 0, fmt.Errorf("service.quick_score: %w", err)
		}
		age, g = a.AgeOn(s.now()), a.Gender
	}
	score, err := scoring.Quick(req.Test, age, g, req.Value)
	if err != nil {
		metrics.RecordScoringError(errorKind(err))
		return 0, err
	}
	metrics.RecordScoreResolved(req.Test.String())
	return score, nil
}

// Compute decodes positional raw values for tt and scores them without
// storing anything.
func (s *Service) Compute(ctx context.Context, tt scoring.TestType, age int, g scoring.Gender, values ...*float64) (int, error) {
	score, err := scoring.Compute(tt, age, g, values...)
	if err != nil {
		metrics.RecordScoringError(errorKind(err))
		return 0, err
	}
	metrics.RecordScoreResolved(tt.String())
	return score, nil
}

// Recalculate re-derives every stored score and composite from the raw
// inputs, using each athlete's current age and height. Results whose athlete no longer
// exists are skipped.
func (s *Service) Recalculate(ctx context.Context) (RecalcReport, error) {
	const op = "service.recalculate"
	store, err := s.repo()
	if err != nil {
		return RecalcReport{}, err
	}

	results, err := store.Results(ctx, "")
	if err != nil {
		return RecalcReport{}, fmt.Errorf("%s: %w", op, err)
	}
	report := RecalcReport{Results: len(results)}
	athletes := map[string]model.Athlete{}
	now := s.now()

	for i := range results {
		r := &results[i]
		a, ok := athletes[r.AthleteID]
		if !ok {
			a, err = store.Athlete(ctx, r.AthleteID)
			if errors.Is(err, repository.ErrNotFound) {
				report.Skipped++
				s.log().Warn(ctx, "result without athlete", logger.String("athlete", r.AthleteID))
				continue
			}
			if err != nil {
				return report, fmt.Errorf("%s: %w", op, err)
			}
			athletes[r.AthleteID] = a
		}

		p := a.ProfileOn(now)
		var changed bool
		_, err = store.Update(ctx, r.AthleteID, r.OccasionID, func(res *model.Result) error {
			before := maps.Clone(res.Scores)
			if err := res.Rescore(p); err != nil {
				return err
			}
			changed = !maps.Equal(before, res.Scores)
			return nil
		})
		if err != nil {
			metrics.RecordScoringError(errorKind(err))
			return report, fmt.Errorf("%s: %s/%s: %w", op, r.AthleteID, r.OccasionID, err)
		}
		metrics.RecordCompositeRecompute()
		if changed {
			report.Changed++
		}
	}
	s.log().Info(ctx, "recalculated results",
		logger.Int("results", report.Results),
		logger.Int("changed", report.Changed),
		logger.Int("skipped", report.Skipped),
	)
	return report, nil
}

// PutAthlete validates and stores an athlete.
func (s *Service) PutAthlete(ctx context.Context, a model.Athlete) error {
	if err := a.Validate(); err != nil {
		return err
	}
	store, err := s.repo()
	if err != nil {
		return err
	}
	return store.PutAthlete(ctx, a)
}

// Athlete returns one athlete.
func (s *Service) Athlete(ctx context.Context, id string) (model.Athlete, error) {
	store, err := s.repo()
	if err != nil {
		return model.Athlete{}, err
	}
	return store.Athlete(ctx, id)
}

// Athletes lists athletes, optionally of one team.
func (s *Service) Athletes(ctx context.Context, teamID string) ([]model.Athlete, error) {
	store, err := s.repo()
	if err != nil {
		return nil, err
	}
	return store.Athletes(ctx, teamID)
}

// Result returns the result of one athlete on one occasion.
func (s *Service) Result(ctx context.Context, athleteID, occasionID string) (model.Result, error) {
	start := time.Now()
	defer func() { metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds())) }()
	store, err := s.repo()
	if err != nil {
		return model.Result{}, err
	}
	return store.Result(ctx, athleteID, occasionID)
}

// Results lists the results of one occasion, or all of them.
func (s *Service) Results(ctx context.Context, occasionID string) ([]model.Result, error) {
	start := time.Now()
	defer func() { metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds())) }()
	store, err := s.repo()
	if err != nil {
		return nil, err
	}
	return store.Results(ctx, occasionID)
}

// AthleteResults lists one athlete's results across occasions. Unknown
// athletes return repository.ErrNotFound.
func (s *Service) AthleteResults(ctx context.Context, athleteID string) ([]model.Result, error) {
	start := time.Now()
	defer func() { metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds())) }()
	store, err := s.repo()
	if err != nil {
		return nil, err
	}
	if _, err := store.Athlete(ctx, athleteID); err != nil {
		return nil, err
	}
	return store.AthleteResults(ctx, athleteID)
}

// Teams lists the teams athletes belong to.
func (s *Service) Teams(ctx context.Context) ([]model.Team, error) {
	store, err := s.repo()
	if err != nil {
		return nil, err
	}
	return store.Teams(ctx)
}

// TeamResults lists the results of a team, of one occasion or all of them.
// A team without athletes returns repository.ErrNotFound.
func (s *Service) TeamResults(ctx context.Context, teamID, occasionID string) ([]model.Result, error) {
	start := time.Now()
	defer func() { metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds())) }()
	store, err := s.repo()
	if err != nil {
		return nil, err
	}
	if teamID == "" {
		return nil, fmt.Errorf("team %q: %w", teamID, repository.ErrNotFound)
	}
	members, err := store.Athletes(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("team %q: %w", teamID, repository.ErrNotFound)
	}
	return store.TeamResults(ctx, teamID, occasionID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}
	if s.started {
		queueLen := s.queue.Len(ctx)
		totalResults := s.store.Count(ctx)

		stats["queueLength"] = queueLen
		stats["busyWorkers"] = s.pool.Busy()
		stats["totalResults"] = totalResults
		stats["seenSubmissions"] = s.deduper.Size()

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateResultsTotal(totalResults)
		metrics.UpdateWorkerCount(s.workerCount)
	}
	return stats
}

// repo returns the configured store. Reads work before Start when a store
// was injected.
func (s *Service) repo() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store == nil {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Get().Named("service")
	}
	return s.logger
}

// errorKind labels scoring errors for metrics.
func errorKind(err error) string {
	switch {
	case errors.Is(err, scoring.ErrInvalidGender):
		return "invalid_gender"
	case errors.Is(err, scoring.ErrInvalidLevel):
		return "invalid_level"
	case errors.Is(err, scoring.ErrInvalidHeight):
		return "invalid_height"
	case errors.Is(err, scoring.ErrUnknownTestType):
		return "unknown_test"
	case errors.Is(err, scoring.ErrInvalidMeasurement):
		return "invalid_measurement"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
