package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
)

const dateLayout = "2006-01-02"

// athleteRequest mirrors the OpenAPI schema for POST /athletes.
type athleteRequest struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Surname   string         `json:"surname"`
	TeamID    string         `json:"team_id"`
	Gender    scoring.Gender `json:"gender"`
	BirthDate string         `json:"birth_date"`
	HeightCM  float64        `json:"height_cm"`
	WeightKG  float64        `json:"weight_kg"`
}

func (a athleteRequest) athlete() (model.Athlete, error) {
	birth, err := parseDate(a.BirthDate)
	if err != nil {
		return model.Athlete{}, fmt.Errorf("invalid birth_date: %w", err)
	}
	return model.Athlete{
		ID:        a.ID,
		Name:      a.Name,
		Surname:   a.Surname,
		TeamID:    a.TeamID,
		Gender:    a.Gender,
		BirthDate: birth,
		HeightCM:  a.HeightCM,
		WeightKG:  a.WeightKG,
	}, nil
}

// parseDate accepts a calendar date or an RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (s *Server) handlePostAthlete(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_athlete"
	var req athleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	a, err := req.athlete()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := s.deps.PutAthlete(r.Context(), a); err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := s.deps.Athletes(r.Context(), r.URL.Query().Get("team"))
	if err != nil {
		writeServiceError(w, "api.list_athletes", err)
		return
	}
	if athletes == nil {
		athletes = []model.Athlete{}
	}
	writeJSON(w, http.StatusOK, athletes)
}

func (s *Server) handleGetAthlete(w http.ResponseWriter, r *http.Request) {
	a, err := s.deps.Athlete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "api.get_athlete", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
