package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

// submissionRequest mirrors the OpenAPI schema for POST /submissions. Input
// holds the test-specific raw values, e.g. {"time_1": 2.9}.
type submissionRequest struct {
	ID         string          `json:"id"`
	AthleteID  string          `json:"athlete_id"`
	OccasionID string          `json:"occasion_id"`
	Test       string          `json:"test"`
	Input      json.RawMessage `json:"input"`
	At         string          `json:"at"`
}

func (e submissionRequest) validate() error {
	switch {
	case strings.TrimSpace(e.AthleteID) == "":
		return errors.New("missing athlete_id")
	case strings.TrimSpace(e.OccasionID) == "":
		return errors.New("missing occasion_id")
	case strings.TrimSpace(e.Test) == "":
		return errors.New("missing test")
	case len(e.Input) == 0:
		return errors.New("missing input")
	}
	if e.At != "" {
		if _, err := time.Parse(time.RFC3339, e.At); err != nil {
			return errors.New("invalid at; must be RFC3339")
		}
	}
	return nil
}

func (e submissionRequest) submission(submittedBy string) (model.Submission, error) {
	tt, err := scoring.ParseTestType(e.Test)
	if err != nil {
		return model.Submission{}, err
	}
	m, err := model.DecodeMeasurement(tt, e.Input)
	if err != nil {
		return model.Submission{}, err
	}
	sub := model.Submission{
		ID:          e.ID,
		AthleteID:   e.AthleteID,
		OccasionID:  e.OccasionID,
		Measurement: m,
		SubmittedBy: submittedBy,
	}
	if e.At != "" {
		sub.At, _ = time.Parse(time.RFC3339, e.At)
	}
	return sub, nil
}

type ackResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// handlePostSubmission handles POST /submissions requests.
func (s *Server) handlePostSubmission(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_submission"
	var req submissionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	sub, err := req.submission(SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	receipt, err := s.deps.Submit(r.Context(), sub)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if receipt.Duplicate {
		writeJSON(w, http.StatusOK, ackResponse{ID: receipt.ID, Status: "duplicate", Duplicate: true})
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{ID: receipt.ID, Status: "accepted"})
}
