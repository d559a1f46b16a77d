package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	"github.com/DaalbuCZ/Hermes/pkg/logger"
)

const (
	defaultTimeout          = 30 * time.Second
	workerChannelMultiplier = 2
	dateLayout              = "2006-01-02"
)

// Client posts rosters to a running server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	workers int
	logger  logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithToken sends token as a bearer credential.
func WithToken(token string) ClientOption {
	return func(c *Client) { c.token = token }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithWorkers sets how many submissions are in flight at once.
func WithWorkers(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger used for progress reports.
func WithLogger(l logger.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		workers: runtime.NumCPU() * workerChannelMultiplier,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stats summarizes one upload.
type Stats struct {
	Athletes  int
	Submitted int
	Accepted  int
	Duplicate int
	Failed    int
	Duration  time.Duration
}

type athleteBody struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Surname   string         `json:"surname"`
	TeamID    string         `json:"team_id"`
	Gender    scoring.Gender `json:"gender"`
	BirthDate string         `json:"birth_date"`
	HeightCM  float64        `json:"height_cm"`
	WeightKG  float64        `json:"weight_kg"`
}

type submissionBody struct {
	ID         string          `json:"id"`
	AthleteID  string          `json:"athlete_id"`
	OccasionID string          `json:"occasion_id"`
	Test       string          `json:"test"`
	Input      json.RawMessage `json:"input"`
	At         string          `json:"at"`
}

type ackBody struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// SubmissionID is the idempotency key of one test of one athlete on one
// occasion, so uploading the same roster twice yields duplicates.
func SubmissionID(occasion, athleteID string, tt scoring.TestType) string {
	return occasion + "/" + athleteID + "/" + tt.String()
}

// Upload stores every athlete, then submits every recorded input
// concurrently.
func (c *Client) Upload(ctx context.Context, r *Roster, now time.Time) (Stats, error) {
	start := time.Now()
	var stats Stats

	for i := range r.Athletes {
		if err := c.PutAthlete(ctx, r.Athletes[i].Athlete()); err != nil {
			return stats, err
		}
		stats.Athletes++
	}

	bodies, err := submissions(r, now)
	if err != nil {
		return stats, err
	}
	c.log().Info(ctx, "submitting roster",
		logger.String("occasion", r.Occasion),
		logger.Int("submissions", len(bodies)),
		logger.Int("workers", c.workers))

	var accepted, duplicate, failed, submitted int64
	jobs := make(chan submissionBody, c.workers*workerChannelMultiplier)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for body := range jobs {
				atomic.AddInt64(&submitted, 1)
				status, err := c.submit(ctx, body)
				switch {
				case err != nil:
					atomic.AddInt64(&failed, 1)
					c.log().Warn(ctx, "submission failed", logger.String("id", body.ID), logger.Error(err))
				case status == "duplicate":
					atomic.AddInt64(&duplicate, 1)
				default:
					atomic.AddInt64(&accepted, 1)
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, b := range bodies {
			select {
			case <-ctx.Done():
				return
			case jobs <- b:
			}
		}
	}()
	wg.Wait()

	stats.Submitted = int(atomic.LoadInt64(&submitted))
	stats.Accepted = int(atomic.LoadInt64(&accepted))
	stats.Duplicate = int(atomic.LoadInt64(&duplicate))
	stats.Failed = int(atomic.LoadInt64(&failed))
	stats.Duration = time.Since(start)

	c.log().Info(ctx, "roster submitted",
		logger.Int("accepted", stats.Accepted),
		logger.Int("duplicate", stats.Duplicate),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration))
	return stats, ctx.Err()
}

func submissions(r *Roster, now time.Time) ([]submissionBody, error) {
	at := r.TestedOn(now).UTC().Format(time.RFC3339)
	var out []submissionBody
	for i := range r.Athletes {
		e := &r.Athletes[i]
		for _, m := range e.Measurements() {
			input, err := json.Marshal(m)
			if err != nil {
				return nil, fmt.Errorf("encode %s for %s: %w", m.TestType(), e.ID, err)
			}
			out = append(out, submissionBody{
				ID:         SubmissionID(r.Occasion, e.ID, m.TestType()),
				AthleteID:  e.ID,
				OccasionID: r.Occasion,
				Test:       m.TestType().String(),
				Input:      input,
				At:         at,
			})
		}
	}
	return out, nil
}

// PutAthlete creates or replaces an athlete on the server.
func (c *Client) PutAthlete(ctx context.Context, a model.Athlete) error {
	body := athleteBody{
		ID:        a.ID,
		Name:      a.Name,
		Surname:   a.Surname,
		TeamID:    a.TeamID,
		Gender:    a.Gender,
		BirthDate: a.BirthDate.Format(dateLayout),
		HeightCM:  a.HeightCM,
		WeightKG:  a.WeightKG,
	}
	resp, err := c.post(ctx, "/athletes", body)
	if err != nil {
		return err
	}
	if _, err := readBody(resp, http.StatusCreated); err != nil {
		return fmt.Errorf("athlete %s: %w", a.ID, err)
	}
	return nil
}

func (c *Client) submit(ctx context.Context, body submissionBody) (string, error) {
	resp, err := c.post(ctx, "/submissions", body)
	if err != nil {
		return "", err
	}
	data, err := readBody(resp, http.StatusAccepted, http.StatusOK)
	if err != nil {
		return "", err
	}
	var ack ackBody
	if err := json.Unmarshal(data, &ack); err != nil {
		return "", fmt.Errorf("decode ack: %w", err)
	}
	if ack.Duplicate {
		return "duplicate", nil
	}
	return ack.Status, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.http.Do(req)
}

// readBody reads and closes the response body, failing unless the status
// is one of want.
func readBody(resp *http.Response, want ...int) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	for _, code := range want {
		if resp.StatusCode == code {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedCode, resp.StatusCode, strings.TrimSpace(string(data)))
}

func (c *Client) log() logger.Logger {
	if c.logger == nil {
		return logger.Get().Named("roster")
	}
	return c.logger
}
