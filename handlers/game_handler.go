package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-admin/models"
	"github.com/Dosada05/esports-admin/services"
)

type GameHandler struct {
	gameService services.GameService
	renderer    Renderer
	logger      *slog.Logger
}

func NewGameHandler(gs services.GameService, renderer Renderer, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameService: gs,
		renderer:    renderer,
		logger:      logger,
	}
}

type gamesPage struct {
	Games []models.Game
}

func gameInputFromFields(f fields) services.GameInput {
	return services.GameInput{
		Title:     f.text("title"),
		Developer: f.text("developer"),
		Genre:     f.text("genre"),
	}
}

func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error retrieving games")
		return
	}
	renderPage(w, r, h.renderer, h.logger, "games", gamesPage{Games: games})
}

func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.gameService.CreateGame(r.Context(), gameInputFromFields(f)); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error inserting game")
		return
	}
	redirect(w, r, "/games")
}

func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	f, err := readFields(w, r)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if _, err := h.gameService.UpdateGame(r.Context(), gameID, gameInputFromFields(f)); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err, "Error updating game")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.gameService.DeleteGame(r.Context(), gameID); err != nil {
		serverErrorResponse(w, r, h.logger, err, "Error deleting game")
		return
	}
	redirect(w, r, "/games")
}
