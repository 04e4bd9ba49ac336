package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-admin/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	renderer          Renderer
	logger            *slog.Logger
}

func NewTournamentHandler(ts services.TournamentService, renderer Renderer, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		renderer:          renderer,
		logger:            logger,
	}
}

func tournamentInputFromFields(f fields) (services.TournamentInput, error) {
	var input services.TournamentInput
	var err error

	if input.GameID, err = f.optionalInt("gameID"); err != nil {
		return input, err
	}
	if input.PrizeMoney, err = f.integer("prizeMoney"); err != nil {
		return input, err
	}
	if input.StartDate, err = f.date("startDate"); err != nil {
		return input, err
	}
	if input.EndDate, err = f.date("endDate"); err != nil {
		return input, err
	}
	input.Name = f.text("name")
	input.Location = f.text("location")
	return input, nil
}

func (h *TournamentHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	page, err := h.tournamentService.ListTournamentsPage(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error retrieving tournaments")
		return
	}
	renderPage(w, r, h.renderer, h.logger, "tournaments", page)
}

func (h *TournamentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := tournamentInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.tournamentService.CreateTournament(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error inserting tournament")
		return
	}
	redirect(w, r, "/tournaments")
}

func (h *TournamentHandler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	input, err := tournamentInputFromFields(f)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.tournamentService.UpdateTournament(r.Context(), tournamentID, input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error updating tournament")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteTournament also removes the tournament's matches and their join rows.
func (h *TournamentHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.tournamentService.DeleteTournament(r.Context(), tournamentID); err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error deleting tournament")
		return
	}
	redirect(w, r, "/tournaments")
}
