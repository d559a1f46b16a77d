package api

import (
	"net/http"

	service "github.com/DaalbuCZ/Hermes/internal/app"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

type quickRequest struct {
	Test      string         `json:"test"`
	Value     *float64       `json:"value"`
	AthleteID string         `json:"athlete_id"`
	Age       int            `json:"age"`
	Gender    scoring.Gender `json:"gender"`
}

type computeRequest struct {
	Test   string         `json:"test"`
	Age    int            `json:"age"`
	Gender scoring.Gender `json:"gender"`
	Values []*float64     `json:"values"`
}

type scoreResponse struct {
	Test  string `json:"test"`
	Score int    `json:"score"`
}

// handleQuickScore handles POST /scores/quick requests.
func (s *Server) handleQuickScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.quick_score"
	var req quickRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	tt, err := scoring.ParseTestType(req.Test)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	score, err := s.deps.QuickScore(r.Context(), service.QuickRequest{
		Test:      tt,
		AthleteID: req.AthleteID,
		Age:       req.Age,
		Gender:    req.Gender,
		Value:     *req.Value,
	})
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{Test: tt.String(), Score: score})
}

// handleComputeScore handles POST /scores/compute requests.
func (s *Server) handleComputeScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.compute_score"
	var req computeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	tt, err := scoring.ParseTestType(req.Test)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	score, err := s.deps.Compute(r.Context(), tt, req.Age, req.Gender, req.Values...)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{Test: tt.String(), Score: score})
}
