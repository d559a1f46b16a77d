package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite

	"github.com/DaalbuCZ/Hermes/internal/domain/composite"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	"github.com/DaalbuCZ/Hermes/pkg/metrics"
)

// Driver names a SQL backend.
type Driver string

// Supported drivers.
const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

const birthDateLayout = "2006-01-02"

// SQLStore is a Store over database/sql, backed by SQLite or PostgreSQL.
type SQLStore struct {
	db     *sql.DB
	driver Driver
	opts   options
}

// OpenSQL opens the database, ensures the schema exists and returns a store.
// An empty dsn selects a local default for the driver.
func OpenSQL(ctx context.Context, driver Driver, dsn string, opts ...Option) (*SQLStore, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite"
		if dsn == "" {
			dsn = "file:hermes.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx"
		if dsn == "" {
			dsn = "postgres://localhost:5432/hermes?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// Update transactions serialize on the single SQLite connection.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	s := &SQLStore{db: db, driver: driver, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&s.opts)
	}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema: %w", err)
	}
	return s, nil
}

func (s *SQLStore) ensureSchema(ctx context.Context) error {
	schema := schemaSQLite
	if s.driver == DriverPostgres {
		schema = schemaPostgres
	}
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// PutAthlete implements Store.PutAthlete.
func (s *SQLStore) PutAthlete(ctx context.Context, a model.Athlete) error {
	if a.ID == "" {
		return ErrMissingKey
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO athletes (id,name,surname,team_id,gender,birth_date,height_cm,weight_kg)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, surname=EXCLUDED.surname, team_id=EXCLUDED.team_id,
			gender=EXCLUDED.gender, birth_date=EXCLUDED.birth_date, height_cm=EXCLUDED.height_cm, weight_kg=EXCLUDED.weight_kg`,
		a.ID, a.Name, a.Surname, a.TeamID, string(a.Gender), a.BirthDate.Format(birthDateLayout), a.HeightCM, a.WeightKG)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "write")
	}
	return err
}

const athleteColumns = `id,name,surname,team_id,gender,birth_date,height_cm,weight_kg`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAthlete(row rowScanner) (model.Athlete, error) {
	var (
		a      model.Athlete
		gender string
		birth  string
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Surname, &a.TeamID, &gender, &birth, &a.HeightCM, &a.WeightKG); err != nil {
		return model.Athlete{}, err
	}
	a.Gender = scoring.Gender(gender)
	t, err := time.Parse(birthDateLayout, birth)
	if err != nil {
		return model.Athlete{}, fmt.Errorf("athlete %s birth date: %w", a.ID, err)
	}
	a.BirthDate = t
	return a, nil
}

// Athlete implements Store.Athlete.
func (s *SQLStore) Athlete(ctx context.Context, id string) (model.Athlete, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+athleteColumns+` FROM athletes WHERE id=$1`, id)
	a, err := scanAthlete(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Athlete{}, ErrNotFound
	}
	return a, err
}

// Athletes implements Store.Athletes.
func (s *SQLStore) Athletes(ctx context.Context, teamID string) ([]model.Athlete, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+athleteColumns+` FROM athletes
		WHERE $1 = '' OR team_id = $1 ORDER BY id`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Athlete
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

const resultColumns = `athlete_id,occasion_id,raw_json,scores_json,derived_json,strength,speed,endurance,agility,updated_at`

const teamResultColumns = `r.athlete_id,r.occasion_id,r.raw_json,r.scores_json,r.derived_json,` +
	`r.strength,r.speed,r.endurance,r.agility,r.updated_at`

func scanResult(row rowScanner) (model.Result, error) {
	var (
		r                                   model.Result
		rawJSON, scoresJSON, derivedJSON    string
		strength, speed, endurance, agility sql.NullFloat64
		updated                             int64
	)
	if err := row.Scan(&r.AthleteID, &r.OccasionID, &rawJSON, &scoresJSON, &derivedJSON,
		&strength, &speed, &endurance, &agility, &updated); err != nil {
		return model.Result{}, err
	}
	if err := json.Unmarshal([]byte(rawJSON), &r.Raw); err != nil {
		return model.Result{}, fmt.Errorf("decode raw: %w", err)
	}
	r.Scores = composite.Scores{}
	if err := json.Unmarshal([]byte(scoresJSON), &r.Scores); err != nil {
		return model.Result{}, fmt.Errorf("decode scores: %w", err)
	}
	if err := json.Unmarshal([]byte(derivedJSON), &r.Derived); err != nil {
		return model.Result{}, fmt.Errorf("decode derived: %w", err)
	}
	r.Composites = composite.Set{
		Strength:  nullable(strength),
		Speed:     nullable(speed),
		Endurance: nullable(endurance),
		Agility:   nullable(agility),
	}
	r.UpdatedAt = time.UnixMilli(updated).UTC()
	return r, nil
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Update implements Store.Update inside a transaction. On PostgreSQL the
// existing row is locked with FOR UPDATE; SQLite runs on a single connection.
func (s *SQLStore) Update(ctx context.Context, athleteID, occasionID string, fn UpdateFunc) (res model.Result, err error) {
	if athleteID == "" || occasionID == "" {
		return model.Result{}, ErrMissingKey
	}
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryUpdateLatency(float64(time.Since(start).Milliseconds()))
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Result{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `SELECT ` + resultColumns + ` FROM results WHERE athlete_id=$1 AND occasion_id=$2`
	if s.driver == DriverPostgres {
		// Seed an empty row so FOR UPDATE has something to lock on first write.
		if _, err = tx.ExecContext(ctx, `INSERT INTO results (`+resultColumns+`)
			VALUES ($1,$2,'{}','{}','{}',NULL,NULL,NULL,NULL,$3) ON CONFLICT DO NOTHING`,
			athleteID, occasionID, s.opts.now().UnixMilli()); err != nil {
			return model.Result{}, err
		}
		query += ` FOR UPDATE`
	}
	current, err := scanResult(tx.QueryRowContext(ctx, query, athleteID, occasionID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		current = *model.NewResult(athleteID, occasionID)
	case err != nil:
		return model.Result{}, err
	}

	if err = fn(&current); err != nil {
		return model.Result{}, err
	}
	current.AthleteID, current.OccasionID = athleteID, occasionID
	current.UpdatedAt = s.opts.now().UTC()

	if err = upsertResult(ctx, tx, current); err != nil {
		metrics.RecordErrorByComponent("repository", "write")
		return model.Result{}, err
	}
	if err = tx.Commit(); err != nil {
		return model.Result{}, err
	}
	return cloneResult(current), nil
}

func upsertResult(ctx context.Context, tx *sql.Tx, r model.Result) error {
	rawJSON, err := json.Marshal(r.Raw)
	if err != nil {
		return err
	}
	scores := r.Scores
	if scores == nil {
		scores = composite.Scores{}
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	derivedJSON, err := json.Marshal(r.Derived)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO results (`+resultColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (athlete_id, occasion_id) DO UPDATE SET raw_json=EXCLUDED.raw_json,
			scores_json=EXCLUDED.scores_json, derived_json=EXCLUDED.derived_json,
			strength=EXCLUDED.strength, speed=EXCLUDED.speed, endurance=EXCLUDED.endurance,
			agility=EXCLUDED.agility, updated_at=EXCLUDED.updated_at`,
		r.AthleteID, r.OccasionID, string(rawJSON), string(scoresJSON), string(derivedJSON),
		r.Composites.Strength, r.Composites.Speed, r.Composites.Endurance, r.Composites.Agility,
		r.UpdatedAt.UnixMilli())
	return err
}

// Result implements Store.Result.
func (s *SQLStore) Result(ctx context.Context, athleteID, occasionID string) (model.Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	row := s.db.QueryRowContext(ctx, `SELECT `+resultColumns+` FROM results WHERE athlete_id=$1 AND occasion_id=$2`,
		athleteID, occasionID)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Result{}, ErrNotFound
	}
	return r, err
}

// Results implements Store.Results.
func (s *SQLStore) Results(ctx context.Context, occasionID string) ([]model.Result, error) {
	return s.queryResults(ctx, `SELECT `+resultColumns+` FROM results
		WHERE $1 = '' OR occasion_id = $1 ORDER BY occasion_id, athlete_id`, occasionID)
}

// AthleteResults implements Store.AthleteResults. The primary key leads
// with athlete_id, so the lookup is indexed.
func (s *SQLStore) AthleteResults(ctx context.Context, athleteID string) ([]model.Result, error) {
	return s.queryResults(ctx, `SELECT `+resultColumns+` FROM results
		WHERE athlete_id = $1 ORDER BY occasion_id`, athleteID)
}

// TeamResults implements Store.TeamResults.
func (s *SQLStore) TeamResults(ctx context.Context, teamID, occasionID string) ([]model.Result, error) {
	return s.queryResults(ctx, `SELECT `+teamResultColumns+` FROM results r
		JOIN athletes a ON a.id = r.athlete_id
		WHERE a.team_id = $1 AND ($2 = '' OR r.occasion_id = $2)
		ORDER BY r.occasion_id, r.athlete_id`, teamID, occasionID)
}

func (s *SQLStore) queryResults(ctx context.Context, query string, args ...any) ([]model.Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Teams implements Store.Teams. Athletes without a team are left out.
func (s *SQLStore) Teams(ctx context.Context) ([]model.Team, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT team_id, COUNT(*) FROM athletes
		WHERE team_id <> '' GROUP BY team_id ORDER BY team_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Athletes); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Count implements Store.Count. Query errors count as zero.
func (s *SQLStore) Count(ctx context.Context) int {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		metrics.RecordErrorByComponent("repository", "count")
		return 0
	}
	metrics.UpdateResultsTotal(n)
	return n
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS athletes (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  surname TEXT NOT NULL DEFAULT '',
  team_id TEXT NOT NULL DEFAULT '',
  gender TEXT NOT NULL,
  birth_date TEXT NOT NULL,
  height_cm REAL NOT NULL DEFAULT 0,
  weight_kg REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS results (
  athlete_id TEXT NOT NULL,
  occasion_id TEXT NOT NULL,
  raw_json TEXT NOT NULL,
  scores_json TEXT NOT NULL,
  derived_json TEXT NOT NULL,
  strength REAL,
  speed REAL,
  endurance REAL,
  agility REAL,
  updated_at INTEGER NOT NULL,
  PRIMARY KEY (athlete_id, occasion_id)
);

CREATE INDEX IF NOT EXISTS idx_results_occasion ON results(occasion_id);
CREATE INDEX IF NOT EXISTS idx_athletes_team ON athletes(team_id);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS athletes (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  surname TEXT NOT NULL DEFAULT '',
  team_id TEXT NOT NULL DEFAULT '',
  gender TEXT NOT NULL,
  birth_date TEXT NOT NULL,
  height_cm DOUBLE PRECISION NOT NULL DEFAULT 0,
  weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS results (
  athlete_id TEXT NOT NULL,
  occasion_id TEXT NOT NULL,
  raw_json TEXT NOT NULL,
  scores_json TEXT NOT NULL,
  derived_json TEXT NOT NULL,
  strength DOUBLE PRECISION,
  speed DOUBLE PRECISION,
  endurance DOUBLE PRECISION,
  agility DOUBLE PRECISION,
  updated_at BIGINT NOT NULL,
  PRIMARY KEY (athlete_id, occasion_id)
);

CREATE INDEX IF NOT EXISTS idx_results_occasion ON results(occasion_id);
CREATE INDEX IF NOT EXISTS idx_athletes_team ON athletes(team_id);
`
