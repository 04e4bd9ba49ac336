package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/esports-admin/handlers"
	"github.com/Dosada05/esports-admin/render"
	"github.com/Dosada05/esports-admin/routes"
	"github.com/Dosada05/esports-admin/services"
	"github.com/Dosada05/esports-admin/testutil"
	"github.com/go-chi/chi/v5"
)

// newTestServer wires the real router, services and templates over an in-memory store.
func newTestServer(t *testing.T) (http.Handler, *testutil.MemStore) {
	t.Helper()

	store := testutil.NewMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	renderer, err := render.New(os.DirFS(filepath.Join("..", "views")))
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}

	static := t.TempDir()
	if err := os.MkdirAll(filepath.Join(static, "css"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(static, "css", "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := routes.Handlers{
		Admin: handlers.NewAdminHandler(services.NewAdminService(store.Admin(), logger), renderer, logger),
		Team:  handlers.NewTeamHandler(services.NewTeamService(store.Teams()), renderer, logger),
		Game:  handlers.NewGameHandler(services.NewGameService(store.Games()), renderer, logger),
		Tournament: handlers.NewTournamentHandler(
			services.NewTournamentService(store.Tournaments(), store.Games()), renderer, logger),
		Match: handlers.NewMatchHandler(
			services.NewMatchService(store.Matches(), store.Tournaments(), store.Teams()), renderer, logger),
		MatchTeam: handlers.NewMatchTeamHandler(
			services.NewMatchTeamService(store.MatchTeams(), store.Matches(), store.Teams()), renderer, logger),
		TournamentMatch: handlers.NewTournamentMatchHandler(
			services.NewTournamentMatchService(store.TournamentMatches(), store.Tournaments(), store.Matches()), renderer, logger),
	}

	router := chi.NewRouter()
	routes.SetupRoutes(router, h, routes.Options{
		StaticDir:          static,
		CORSAllowedOrigins: []string{"*"},
		ResetRateLimit:     100,
		Logger:             logger,
	})
	return router, store
}

func do(t *testing.T, h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func expectRedirect(t *testing.T, rr *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 (body %q)", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Location"); got != location {
		t.Errorf("Location = %q, want %q", got, location)
	}
}

func TestListPagesRenderSeedData(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"Esports Admin", "/tournamentMatches"}},
		{"/teams", []string{"T1", "Natus Vincere", "Sentinels"}},
		{"/games", []string{"League of Legends", "Riot Games", "Tactical Shooter"}},
		{"/tournaments", []string{"IEM Katowice 2025", "Counter-Strike 2", "Sep 25, 2024"}},
		{"/matches", []string{"VCT Masters Toronto 2025", "Natus Vincere", "Nov 2, 2024 15:00"}},
		{"/matchTeams", []string{"Fnatic", "Team Liquid"}},
		{"/tournamentMatches", []string{"League of Legends World Championship 2024", "Jun 22, 2025 19:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := do(t, srv, http.MethodGet, tt.path, nil)
			if rr.Code != http.StatusOK {
				t.Fatalf("GET %s = %d: %s", tt.path, rr.Code, rr.Body.String())
			}
			if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}
			body := rr.Body.String()
			for _, s := range tt.want {
				if !strings.Contains(body, s) {
					t.Errorf("GET %s: body does not contain %q", tt.path, s)
				}
			}
		})
	}
}

func TestAlphaTeamScenario(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	rr := do(t, srv, http.MethodPost, "/teams/add", url.Values{
		"name": {"Alpha"}, "region": {"NA"}, "playerCount": {"5"},
	})
	expectRedirect(t, rr, "/teams")

	teams, _ := store.Teams().GetAll(ctx)
	alpha := teams[len(teams)-1]
	if alpha.Name != "Alpha" || alpha.Region != "NA" || alpha.PlayerCount != 5 || alpha.ID != 6 {
		t.Fatalf("stored team = %+v", alpha)
	}
	if body := do(t, srv, http.MethodGet, "/teams", nil).Body.String(); !strings.Contains(body, "Alpha") {
		t.Error("Alpha missing from team list")
	}

	rr = do(t, srv, http.MethodPost, "/matchTeams/add", url.Values{"matchID": {"1"}, "teamID": {"6"}})
	expectRedirect(t, rr, "/matchTeams")

	rr = do(t, srv, http.MethodPost, "/teams/delete/6", nil)
	expectRedirect(t, rr, "/teams")

	matchTeams, _ := store.MatchTeams().GetAll(ctx)
	for _, mt := range matchTeams {
		if mt.TeamID == 6 {
			t.Errorf("match team %d still references the deleted team", mt.ID)
		}
	}
	if body := do(t, srv, http.MethodGet, "/teams", nil).Body.String(); strings.Contains(body, "Alpha") {
		t.Error("Alpha still listed after delete")
	}

	rr = do(t, srv, http.MethodPost, "/matches/add", url.Values{
		"tournamentID": {"1"}, "scheduledTime": {"2025-01-01T10:00:00"}, "winnerID": {""},
	})
	expectRedirect(t, rr, "/matches")

	matches, _ := store.Matches().GetAll(ctx)
	m := matches[len(matches)-1]
	if m.TournamentName == nil || *m.TournamentName != "League of Legends World Championship 2024" {
		t.Errorf("TournamentName = %v", m.TournamentName)
	}
	if m.WinnerID != nil || m.WinnerName != nil {
		t.Errorf("winner should be blank, got %v", m.WinnerID)
	}
	if !m.ScheduledTime.Equal(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("ScheduledTime = %v", m.ScheduledTime)
	}
	if body := do(t, srv, http.MethodGet, "/matches", nil).Body.String(); !strings.Contains(body, "Jan 1, 2025 10:00") {
		t.Error("new match missing from match list")
	}
}

func TestUpdateReplacesRow(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	rr := do(t, srv, http.MethodPost, "/teams/update/2", url.Values{
		"name": {"Fnatic Academy"}, "region": {"EU"}, "playerCount": {"6"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update = %d: %s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("Location") != "" {
		t.Error("update must not redirect")
	}

	rr = doJSON(t, srv, http.MethodPut, "/games/2", `{"title":"CS2","developer":"Valve","genre":"FPS"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("PUT /games/2 = %d: %s", rr.Code, rr.Body.String())
	}

	rr = do(t, srv, http.MethodPut, "/tournaments/3", url.Values{
		"name": {"VCT Masters"}, "gameID": {""}, "prizeMoney": {"500"}, "location": {"Toronto"},
		"startDate": {"2025-06-07"}, "endDate": {"2025-06-08"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("PUT /tournaments/3 = %d: %s", rr.Code, rr.Body.String())
	}

	teams, _ := store.Teams().GetAll(ctx)
	if teams[1].Name != "Fnatic Academy" || teams[1].PlayerCount != 6 {
		t.Errorf("team 2 = %+v", teams[1])
	}
	games, _ := store.Games().GetAll(ctx)
	if games[1].Title != "CS2" || games[1].Genre != "FPS" {
		t.Errorf("game 2 = %+v", games[1])
	}
	tournaments, _ := store.Tournaments().GetAll(ctx)
	if tournaments[2].GameID != nil || tournaments[2].PrizeMoney != 500 {
		t.Errorf("tournament 3 = %+v", tournaments[2])
	}
}

func TestJSONIntegralNumbers(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	rr := doJSON(t, srv, http.MethodPut, "/teams/1", `{"name":"T1","region":"KR","playerCount":5.0}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("PUT /teams/1 = %d: %s", rr.Code, rr.Body.String())
	}
	expectRedirect(t, doJSON(t, srv, http.MethodPost, "/teams/add", `{"name":"Alpha","region":"NA","playerCount":1e1}`), "/teams")

	teams, _ := store.Teams().GetAll(ctx)
	if teams[0].PlayerCount != 5 {
		t.Errorf("team 1 playerCount = %d, want 5", teams[0].PlayerCount)
	}
	if last := teams[len(teams)-1]; last.Name != "Alpha" || last.PlayerCount != 10 {
		t.Errorf("added team = %+v", last)
	}
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		target string
		form   url.Values
	}{
		{"/teams/update/999", url.Values{"name": {"X"}, "region": {"Y"}, "playerCount": {"1"}}},
		{"/games/update/999", url.Values{"title": {"X"}, "developer": {"Y"}, "genre": {"Z"}}},
		{"/matchTeams/update/999", url.Values{"matchID": {"1"}, "teamID": {"1"}}},
		{"/tournamentMatches/update/999", url.Values{"tournamentID": {"1"}, "matchID": {"2"}}},
	}
	for _, tt := range tests {
		rr := do(t, srv, http.MethodPost, tt.target, tt.form)
		if rr.Code != http.StatusNotFound {
			t.Errorf("POST %s = %d, want 404", tt.target, rr.Code)
		}
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	for _, target := range []string{
		"/teams/delete/999", "/games/delete/999", "/tournaments/delete/999",
		"/matches/delete/999", "/matchTeams/delete/999", "/tournamentMatches/delete/999",
	} {
		rr := do(t, srv, http.MethodPost, target, nil)
		if rr.Code != http.StatusSeeOther {
			t.Errorf("POST %s = %d, want 303", target, rr.Code)
		}
	}

	games, _ := store.Games().GetAll(ctx)
	matchTeams, _ := store.MatchTeams().GetAll(ctx)
	if len(games) != 4 || len(matchTeams) != 8 {
		t.Errorf("rows changed: %d games, %d match teams", len(games), len(matchTeams))
	}
}

func TestDeleteAliasAndCascade(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	rr := do(t, srv, http.MethodDelete, "/tournaments/1", nil)
	expectRedirect(t, rr, "/tournaments")

	matches, _ := store.Matches().GetAll(ctx)
	for _, m := range matches {
		if m.TournamentID == 1 {
			t.Errorf("match %d of deleted tournament survived", m.ID)
		}
	}
	links, _ := store.TournamentMatches().GetAll(ctx)
	if len(links) != 2 {
		t.Errorf("len(tournament matches) = %d, want 2", len(links))
	}
	matchTeams, _ := store.MatchTeams().GetAll(ctx)
	for _, mt := range matchTeams {
		if mt.MatchID == 1 || mt.MatchID == 4 {
			t.Errorf("match team %d references a deleted match", mt.ID)
		}
	}
}

func TestMalformedInputIsBadRequest(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		form   url.Values
		json   string
	}{
		{name: "player count not a number", method: http.MethodPost, target: "/teams/add",
			form: url.Values{"name": {"A"}, "region": {"NA"}, "playerCount": {"five"}}},
		{name: "missing name", method: http.MethodPost, target: "/teams/add",
			form: url.Values{"region": {"NA"}, "playerCount": {"5"}}},
		{name: "bad id in path", method: http.MethodPost, target: "/teams/delete/abc"},
		{name: "negative id in path", method: http.MethodPost, target: "/games/update/-1",
			form: url.Values{"title": {"X"}, "developer": {"Y"}, "genre": {"Z"}}},
		{name: "bad scheduled time", method: http.MethodPost, target: "/matches/add",
			form: url.Values{"tournamentID": {"1"}, "scheduledTime": {"tomorrow"}}},
		{name: "missing scheduled time", method: http.MethodPost, target: "/matches/add",
			form: url.Values{"tournamentID": {"1"}}},
		{name: "end before start", method: http.MethodPost, target: "/tournaments/add",
			form: url.Values{"name": {"Cup"}, "prizeMoney": {"1"}, "location": {"Oslo"},
				"startDate": {"2025-05-10"}, "endDate": {"2025-05-01"}}},
		{name: "missing team id", method: http.MethodPost, target: "/matchTeams/add",
			form: url.Values{"matchID": {"1"}}},
		{name: "malformed json", method: http.MethodPost, target: "/games/add", json: `{"title":`},
		{name: "fractional json number", method: http.MethodPost, target: "/teams/add",
			json: `{"name":"A","region":"NA","playerCount":5.5}`},
		{name: "json array value", method: http.MethodPost, target: "/games/add", json: `{"title":["a"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rr *httptest.ResponseRecorder
			if tt.json != "" {
				rr = doJSON(t, srv, tt.method, tt.target, tt.json)
			} else {
				rr = do(t, srv, tt.method, tt.target, tt.form)
			}
			if rr.Code != http.StatusBadRequest {
				t.Errorf("%s %s = %d, want 400 (body %q)", tt.method, tt.target, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestStorageErrorsAreServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		failOp  string
		method  string
		target  string
		form    url.Values
		message string
	}{
		{name: "list", failOp: "teams.GetAll", method: http.MethodGet, target: "/teams",
			message: "Error retrieving teams"},
		{name: "lookup for list", failOp: "games.GetAll", method: http.MethodGet, target: "/tournaments",
			message: "Error retrieving tournaments"},
		{name: "unknown tournament reference", method: http.MethodPost, target: "/matches/add",
			form:    url.Values{"tournamentID": {"999"}, "scheduledTime": {"2025-01-01T10:00"}},
			message: "Error inserting match"},
		{name: "duplicate join row", method: http.MethodPost, target: "/matchTeams/add",
			form:    url.Values{"matchID": {"1"}, "teamID": {"1"}},
			message: "Error inserting match team"},
		{name: "update", failOp: "matches.Update", method: http.MethodPost, target: "/matches/update/1",
			form:    url.Values{"tournamentID": {"1"}, "scheduledTime": {"2025-01-01T10:00"}},
			message: "Error updating match"},
		{name: "delete", failOp: "games.Delete", method: http.MethodPost, target: "/games/delete/1",
			message: "Error deleting game"},
		{name: "reset", failOp: "admin.Reset", method: http.MethodPost, target: "/reset",
			message: "Error resetting database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, store := newTestServer(t)
			if tt.failOp != "" {
				store.FailOn(tt.failOp, errors.New("connection reset by peer"))
			}

			rr := do(t, srv, tt.method, tt.target, tt.form)
			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("%s %s = %d, want 500", tt.method, tt.target, rr.Code)
			}
			if got := strings.TrimSpace(rr.Body.String()); got != tt.message {
				t.Errorf("body = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestResetRestoresSeed(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	do(t, srv, http.MethodPost, "/teams/add", url.Values{"name": {"Alpha"}, "region": {"NA"}, "playerCount": {"5"}})
	do(t, srv, http.MethodPost, "/games/delete/1", nil)

	rr := do(t, srv, http.MethodPost, "/reset", nil)
	expectRedirect(t, rr, "/")

	teams, _ := store.Teams().GetAll(ctx)
	games, _ := store.Games().GetAll(ctx)
	tournaments, _ := store.Tournaments().GetAll(ctx)
	if len(teams) != 5 || len(games) != 4 || len(tournaments) != 3 {
		t.Fatalf("after reset: %d teams, %d games, %d tournaments", len(teams), len(games), len(tournaments))
	}
	if tournaments[0].GameTitle == nil || *tournaments[0].GameTitle != "League of Legends" {
		t.Errorf("tournament 1 game = %v", tournaments[0].GameTitle)
	}
}

func TestHealth(t *testing.T) {
	srv, store := newTestServer(t)

	if rr := do(t, srv, http.MethodGet, "/healthz", nil); rr.Code != http.StatusOK {
		t.Errorf("healthz = %d, want 200", rr.Code)
	}

	store.FailOn("admin.Ping", errors.New("no connection"))
	if rr := do(t, srv, http.MethodGet, "/healthz", nil); rr.Code != http.StatusServiceUnavailable {
		t.Errorf("healthz = %d, want 503", rr.Code)
	}
}

func TestStaticFiles(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, p := range []string{"/static/css/style.css", "/css/style.css"} {
		rr := do(t, srv, http.MethodGet, p, nil)
		if rr.Code != http.StatusOK || rr.Body.String() != "body{}" {
			t.Errorf("GET %s = %d %q", p, rr.Code, rr.Body.String())
		}
	}
	if rr := do(t, srv, http.MethodGet, "/nowhere", nil); rr.Code != http.StatusNotFound {
		t.Errorf("GET /nowhere = %d, want 404", rr.Code)
	}
}
