package routes

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/Dosada05/esports-admin/handlers"
	"github.com/Dosada05/esports-admin/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
)

// Options holds the router settings that come from configuration.
type Options struct {
	StaticDir          string
	CORSAllowedOrigins []string
	ResetRateLimit     int
	Logger             *slog.Logger
}

// Handlers groups every HTTP handler the router dispatches to.
type Handlers struct {
	Admin           *handlers.AdminHandler
	Team            *handlers.TeamHandler
	Game            *handlers.GameHandler
	Tournament      *handlers.TournamentHandler
	Match           *handlers.MatchHandler
	MatchTeam       *handlers.MatchTeamHandler
	TournamentMatch *handlers.TournamentMatchHandler
}

// resource wires the four CRUD routes of one entity.
type resource struct {
	path    string
	idParam string
	list    http.HandlerFunc
	create  http.HandlerFunc
	update  http.HandlerFunc
	remove  http.HandlerFunc
}

func SetupRoutes(router *chi.Mux, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.CORS(opts.CORSAllowedOrigins))

	router.Get("/", h.Admin.Home)
	router.Get("/healthz", h.Admin.Health)
	router.With(middleware.ResetLimiter(opts.ResetRateLimit)).Post("/reset", h.Admin.ResetDatabase)

	resources := []resource{
		{"/teams", "teamID", h.Team.ListTeams, h.Team.CreateTeam, h.Team.UpdateTeam, h.Team.DeleteTeam},
		{"/games", "gameID", h.Game.ListGames, h.Game.CreateGame, h.Game.UpdateGame, h.Game.DeleteGame},
		{"/tournaments", "tournamentID",
			h.Tournament.ListTournaments, h.Tournament.CreateTournament,
			h.Tournament.UpdateTournament, h.Tournament.DeleteTournament},
		{"/matches", "matchID", h.Match.ListMatches, h.Match.CreateMatch, h.Match.UpdateMatch, h.Match.DeleteMatch},
		{"/matchTeams", "matchTeamID",
			h.MatchTeam.ListMatchTeams, h.MatchTeam.CreateMatchTeam,
			h.MatchTeam.UpdateMatchTeam, h.MatchTeam.DeleteMatchTeam},
		{"/tournamentMatches", "tournamentMatchID",
			h.TournamentMatch.ListTournamentMatches, h.TournamentMatch.CreateTournamentMatch,
			h.TournamentMatch.UpdateTournamentMatch, h.TournamentMatch.DeleteTournamentMatch},
	}

	for _, res := range resources {
		router.Route(res.path, func(r chi.Router) {
			id := "/{" + res.idParam + "}"

			r.Get("/", res.list)
			r.Post("/add", res.create)
			r.Post("/update"+id, res.update)
			r.Put(id, res.update)
			r.Post("/delete"+id, res.remove)
			r.Delete(id, res.remove)
		})
	}

	mountStatic(router, opts.StaticDir)
}

// mountStatic serves StaticDir under /static/ and, for requests no route
// matched, at the root when the path looks like an asset.
func mountStatic(router *chi.Mux, dir string) {
	fileServer := http.FileServer(http.Dir(dir))

	router.Handle("/static/*", http.StripPrefix("/static", fileServer))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && isAsset(r.URL.Path) {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

func isAsset(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".css", ".js", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".webp", ".woff", ".woff2":
		return true
	}
	return false
}
