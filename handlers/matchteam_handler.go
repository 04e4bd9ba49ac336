package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-admin/services"
)

type MatchTeamHandler struct {
	matchTeamService services.MatchTeamService
	renderer         Renderer
	logger           *slog.Logger
}

func NewMatchTeamHandler(mts services.MatchTeamService, renderer Renderer, logger *slog.Logger) *MatchTeamHandler {
	return &MatchTeamHandler{
		matchTeamService: mts,
		renderer:         renderer,
		logger:           logger,
	}
}

func matchTeamInputFromFields(f fields) (services.MatchTeamInput, error) {
	matchID, err := f.integer("matchID")
	if err != nil {
		return services.MatchTeamInput{}, err
	}
	teamID, err := f.integer("teamID")
	if err != nil {
		return services.MatchTeamInput{}, err
	}
	return services.MatchTeamInput{MatchID: matchID, TeamID: teamID}, nil
}

func (h *MatchTeamHandler) ListMatchTeams(w http.ResponseWriter, r *http.Request) {
	page, err := h.matchTeamService.ListMatchTeamsPage(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error retrieving match teams")
		return
	}
	renderPage(w, r, h.renderer, h.logger, "matchTeams", page)
}

func (h *MatchTeamHandler) CreateMatchTeam(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := matchTeamInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.matchTeamService.CreateMatchTeam(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error inserting match team")
		return
	}
	redirect(w, r, "/matchTeams")
}

func (h *MatchTeamHandler) UpdateMatchTeam(w http.ResponseWriter, r *http.Request) {
	matchTeamID, err := getIDFromURL(r, "matchTeamID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := matchTeamInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.matchTeamService.UpdateMatchTeam(r.Context(), matchTeamID, input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error updating match team")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *MatchTeamHandler) DeleteMatchTeam(w http.ResponseWriter, r *http.Request) {
	matchTeamID, err := getIDFromURL(r, "matchTeamID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.matchTeamService.DeleteMatchTeam(r.Context(), matchTeamID); err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error deleting match team")
		return
	}
	redirect(w, r, "/matchTeams")
}
