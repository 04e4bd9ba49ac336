package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-admin/models"
	"github.com/Dosada05/esports-admin/services"
)

type TeamHandler struct {
	teamService services.TeamService
	renderer    Renderer
	logger      *slog.Logger
}

func NewTeamHandler(ts services.TeamService, renderer Renderer, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: ts,
		renderer:    renderer,
		logger:      logger,
	}
}

type teamsPage struct {
	Teams []models.Team
}

func teamInputFromFields(f fields) (services.TeamInput, error) {
	playerCount, err := f.integer("playerCount")
	if err != nil {
		return services.TeamInput{}, err
	}
	return services.TeamInput{
		Name:        f.text("name"),
		Region:      f.text("region"),
		PlayerCount: playerCount,
	}, nil
}

func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error retrieving teams")
		return
	}
	renderPage(w, r, h.renderer, h.logger, "teams", teamsPage{Teams: teams})
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := teamInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.teamService.CreateTeam(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error inserting team")
		return
	}
	redirect(w, r, "/teams")
}

func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := teamInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.teamService.UpdateTeam(r.Context(), teamID, input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error updating team")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), teamID); err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error deleting team")
		return
	}
	redirect(w, r, "/teams")
}
