package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	service "github.com/DaalbuCZ/Hermes/internal/app"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
)

// handleListResults handles GET /results?occasion=ID requests.
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.deps.Results(r.Context(), r.URL.Query().Get("occasion"))
	if err != nil {
		writeServiceError(w, "api.list_results", err)
		return
	}
	if results == nil {
		results = []model.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}

// handleGetResult handles GET /results/{athleteID}/{occasionID} requests.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	res, err := s.deps.Result(r.Context(), chi.URLParam(r, "athleteID"), chi.URLParam(r, "occasionID"))
	if err != nil {
		writeServiceError(w, "api.get_result", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleAthleteResults handles GET /athletes/{id}/results requests.
func (s *Server) handleAthleteResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.deps.AthleteResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "api.athlete_results", err)
		return
	}
	if results == nil {
		results = []model.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.deps.Teams(r.Context())
	if err != nil {
		writeServiceError(w, "api.list_teams", err)
		return
	}
	if teams == nil {
		teams = []model.Team{}
	}
	writeJSON(w, http.StatusOK, teams)
}

// handleTeamResults handles GET /teams/{teamID}/results?occasion=ID requests.
func (s *Server) handleTeamResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.deps.TeamResults(r.Context(), chi.URLParam(r, "teamID"), r.URL.Query().Get("occasion"))
	if err != nil {
		writeServiceError(w, "api.team_results", err)
		return
	}
	if results == nil {
		results = []model.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}

// handleStandings handles GET /standings/{occasionID}?by=speed requests.
func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_standings"
	by := r.URL.Query().Get("by")
	if by == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rows, err := s.deps.Standings(r.Context(), chi.URLParam(r, "occasionID"), by)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if rows == nil {
		rows = []service.Standing{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleRecalculate handles POST /recalculate requests.
func (s *Server) handleRecalculate(w http.ResponseWriter, r *http.Request) {
	report, err := s.deps.Recalculate(r.Context())
	if err != nil {
		writeServiceError(w, "api.recalculate", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
