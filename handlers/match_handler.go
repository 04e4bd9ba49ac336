package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-admin/services"
)

type MatchHandler struct {
	matchService services.MatchService
	renderer     Renderer
	logger       *slog.Logger
}

func NewMatchHandler(ms services.MatchService, renderer Renderer, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		matchService: ms,
		renderer:     renderer,
		logger:       logger,
	}
}

func matchInputFromFields(f fields) (services.MatchInput, error) {
	var input services.MatchInput
	var err error

	if input.TournamentID, err = f.integer("tournamentID"); err != nil {
		return input, err
	}
	if input.ScheduledTime, err = f.dateTime("scheduledTime"); err != nil {
		return input, err
	}
	// Пустой winnerID: матч ещё не сыгран.
	if input.WinnerID, err = f.optionalInt("winnerID"); err != nil {
		return input, err
	}
	return input, nil
}

func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	page, err := h.matchService.ListMatchesPage(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error retrieving matches")
		return
	}
	renderPage(w, r, h.renderer, h.logger, "matches", page)
}

func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := matchInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.matchService.CreateMatch(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error inserting match")
		return
	}
	redirect(w, r, "/matches")
}

func (h *MatchHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := matchInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.matchService.UpdateMatch(r.Context(), matchID, input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error updating match")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.matchService.DeleteMatch(r.Context(), matchID); err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error deleting match")
		return
	}
	redirect(w, r, "/matches")
}
