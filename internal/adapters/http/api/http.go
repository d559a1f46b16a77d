// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	service "github.com/DaalbuCZ/Hermes/internal/app"
	"github.com/DaalbuCZ/Hermes/internal/adapters/repository"
	"github.com/DaalbuCZ/Hermes/internal/domain/composite"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

const requestTimeout = 30 * time.Second

// Dependencies is the service surface the handlers use.
type Dependencies interface {
	PutAthlete(ctx context.Context, a model.Athlete) error
	Athlete(ctx context.Context, id string) (model.Athlete, error)
	Athletes(ctx context.Context, teamID string) ([]model.Athlete, error)

	// Submit queues a submission. Returns service.ErrBackpressure when the
	// queue is full.
	Submit(ctx context.Context, s model.Submission) (service.Receipt, error)

	QuickScore(ctx context.Context, req service.QuickRequest) (int, error)
	Compute(ctx context.Context, tt scoring.TestType, age int, g scoring.Gender, values ...*float64) (int, error)

	Result(ctx context.Context, athleteID, occasionID string) (model.Result, error)
	Results(ctx context.Context, occasionID string) ([]model.Result, error)
	AthleteResults(ctx context.Context, athleteID string) ([]model.Result, error)
	Teams(ctx context.Context) ([]model.Team, error)
	TeamResults(ctx context.Context, teamID, occasionID string) ([]model.Result, error)
	Standings(ctx context.Context, occasionID, by string) ([]service.Standing, error)
	Recalculate(ctx context.Context) (service.RecalcReport, error)

	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps        Dependencies
	auth        *Authenticator
	corsOrigins []string
	docs        func(chi.Router)
}

// Option configures a Server.
type Option func(*Server)

// WithAuth protects every business route with bearer tokens issued by a and
// mounts POST /token.
func WithAuth(a *Authenticator) Option {
	return func(s *Server) { s.auth = a }
}

// WithCORSOrigins sets the allowed browser origins.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) { s.corsOrigins = origins }
}

// WithDocs mounts API documentation routes.
func WithDocs(register func(chi.Router)) Option {
	return func(s *Server) { s.docs = register }
}

// NewServer creates a new API server.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{deps: deps, corsOrigins: []string{"*"}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router with every route attached.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))
	r.Use(MetricsMiddleware)

	r.Get("/healthz", HandleHealth)
	r.Get("/stats", s.handleStats)
	if s.docs != nil {
		s.docs(r)
	}
	if s.auth != nil {
		r.Post("/token", s.auth.HandleToken)
	}

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Timeout(requestTimeout))
		if s.auth != nil {
			pr.Use(s.auth.Middleware)
		}
		pr.Route("/athletes", func(ar chi.Router) {
			ar.Post("/", s.handlePostAthlete)
			ar.Get("/", s.handleListAthletes)
			ar.Get("/{id}", s.handleGetAthlete)
			ar.Get("/{id}/results", s.handleAthleteResults)
		})
		pr.Get("/teams", s.handleListTeams)
		pr.Get("/teams/{teamID}/results", s.handleTeamResults)
		pr.Post("/submissions", s.handlePostSubmission)
		pr.Post("/scores/quick", s.handleQuickScore)
		pr.Post("/scores/compute", s.handleComputeScore)
		pr.Get("/results", s.handleListResults)
		pr.Get("/results/{athleteID}/{occasionID}", s.handleGetResult)
		pr.Get("/standings/{occasionID}", s.handleStandings)
		pr.Post("/recalculate", s.handleRecalculate)
	})
	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service and domain errors to a status and code.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	status, code := classify(err)
	writeError(w, status, code, Wrap(op, err))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, scoring.ErrUnknownTestType),
		errors.Is(err, scoring.ErrInvalidGender),
		errors.Is(err, scoring.ErrInvalidLevel),
		errors.Is(err, scoring.ErrInvalidHeight),
		errors.Is(err, scoring.ErrInvalidMeasurement),
		errors.Is(err, composite.ErrUnknownCategory),
		isModelValidation(err):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrBackpressure):
		return http.StatusTooManyRequests, "backpressure"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func isModelValidation(err error) bool {
	for _, target := range []error{
		model.ErrMissingID, model.ErrMissingName, model.ErrMissingBirth,
		model.ErrInvalidBody, model.ErrMissingOccasion, model.ErrMissingInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
