package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-admin/services"
)

type TournamentMatchHandler struct {
	tournamentMatchService services.TournamentMatchService
	renderer               Renderer
	logger                 *slog.Logger
}

func NewTournamentMatchHandler(tms services.TournamentMatchService, renderer Renderer, logger *slog.Logger) *TournamentMatchHandler {
	return &TournamentMatchHandler{
		tournamentMatchService: tms,
		renderer:               renderer,
		logger:                 logger,
	}
}

func tournamentMatchInputFromFields(f fields) (services.TournamentMatchInput, error) {
	tournamentID, err := f.integer("tournamentID")
	if err != nil {
		return services.TournamentMatchInput{}, err
	}
	matchID, err := f.integer("matchID")
	if err != nil {
		return services.TournamentMatchInput{}, err
	}
	return services.TournamentMatchInput{TournamentID: tournamentID, MatchID: matchID}, nil
}

func (h *TournamentMatchHandler) ListTournamentMatches(w http.ResponseWriter, r *http.Request) {
	page, err := h.tournamentMatchService.ListTournamentMatchesPage(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error retrieving tournament matches")
		return
	}
	renderPage(w, r, h.renderer, h.logger, "tournamentMatches", page)
}

func (h *TournamentMatchHandler) CreateTournamentMatch(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := tournamentMatchInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.tournamentMatchService.CreateTournamentMatch(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error inserting tournament match")
		return
	}
	redirect(w, r, "/tournamentMatches")
}

func (h *TournamentMatchHandler) UpdateTournamentMatch(w http.ResponseWriter, r *http.Request) {
	tournamentMatchID, err := getIDFromURL(r, "tournamentMatchID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := tournamentMatchInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.tournamentMatchService.UpdateTournamentMatch(r.Context(), tournamentMatchID, input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error updating tournament match")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *TournamentMatchHandler) DeleteTournamentMatch(w http.ResponseWriter, r *http.Request) {
	tournamentMatchID, err := getIDFromURL(r, "tournamentMatchID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.tournamentMatchService.DeleteTournamentMatch(r.Context(), tournamentMatchID); err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error deleting tournament match")
		return
	}
	redirect(w, r, "/tournamentMatches")
}
