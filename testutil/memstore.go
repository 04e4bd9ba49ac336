// Package testutil provides in-memory repositories with the same reference,
// cascade and seed behaviour as the postgres schema, for handler and service tests.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Dosada05/esports-admin/models"
	"github.com/Dosada05/esports-admin/repositories"
)

// MemStore holds all six tables. The zero value is not usable; call NewMemStore.
type MemStore struct {
	mu sync.Mutex

	teams             []models.Team
	games             []models.Game
	tournaments       []models.Tournament
	matches           []models.Match
	matchTeams        []models.MatchTeam
	tournamentMatches []models.TournamentMatch

	nextID   map[string]int
	failures map[string]error
}

// NewMemStore returns a store loaded with the seed dataset.
func NewMemStore() *MemStore {
	s := &MemStore{failures: make(map[string]error)}
	s.reset()
	return s
}

// FailOn makes the named operation (for example "teams.GetAll") return err
// until cleared with a nil err.
func (s *MemStore) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *MemStore) fail(op string) error {
	return s.failures[op]
}

func (s *MemStore) Teams() repositories.TeamRepository { return memTeamRepo{s} }

func (s *MemStore) Games() repositories.GameRepository { return memGameRepo{s} }

func (s *MemStore) Tournaments() repositories.TournamentRepository { return memTournamentRepo{s} }

func (s *MemStore) Matches() repositories.MatchRepository { return memMatchRepo{s} }

func (s *MemStore) MatchTeams() repositories.MatchTeamRepository { return memMatchTeamRepo{s} }

func (s *MemStore) TournamentMatches() repositories.TournamentMatchRepository {
	return memTournamentMatchRepo{s}
}

func (s *MemStore) Admin() repositories.AdminRepository { return memAdminRepo{s} }

func (s *MemStore) id(table string) int {
	s.nextID[table]++
	return s.nextID[table]
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// reset mirrors sp_reset_database. Callers hold s.mu or own s exclusively.
func (s *MemStore) reset() {
	s.nextID = map[string]int{}
	s.teams = nil
	s.games = nil
	s.tournaments = nil
	s.matches = nil
	s.matchTeams = nil
	s.tournamentMatches = nil

	for _, g := range []models.Game{
		{Title: "League of Legends", Developer: "Riot Games", Genre: "MOBA"},
		{Title: "Counter-Strike 2", Developer: "Valve", Genre: "Tactical Shooter"},
		{Title: "Valorant", Developer: "Riot Games", Genre: "Tactical Shooter"},
		{Title: "Dota 2", Developer: "Valve", Genre: "MOBA"},
	} {
		g.ID = s.id("games")
		s.games = append(s.games, g)
	}

	for _, t := range []models.Team{
		{Name: "T1", Region: "KR", PlayerCount: 5},
		{Name: "Fnatic", Region: "EU", PlayerCount: 5},
		{Name: "Team Liquid", Region: "NA", PlayerCount: 5},
		{Name: "Natus Vincere", Region: "CIS", PlayerCount: 5},
		{Name: "Sentinels", Region: "NA", PlayerCount: 5},
	} {
		t.ID = s.id("teams")
		s.teams = append(s.teams, t)
	}

	for _, t := range []models.Tournament{
		{Name: "League of Legends World Championship 2024", GameID: ptr(1), PrizeMoney: 2225000, Location: "London",
			StartDate: date(2024, time.September, 25), EndDate: date(2024, time.November, 2)},
		{Name: "IEM Katowice 2025", GameID: ptr(2), PrizeMoney: 1000000, Location: "Katowice",
			StartDate: date(2025, time.January, 29), EndDate: date(2025, time.February, 9)},
		{Name: "VCT Masters Toronto 2025", GameID: ptr(3), PrizeMoney: 1000000, Location: "Toronto",
			StartDate: date(2025, time.June, 7), EndDate: date(2025, time.June, 22)},
	} {
		t.ID = s.id("tournaments")
		s.tournaments = append(s.tournaments, t)
	}

	for _, m := range []models.Match{
		{TournamentID: 1, ScheduledTime: time.Date(2024, time.November, 2, 15, 0, 0, 0, time.UTC), WinnerID: ptr(1)},
		{TournamentID: 2, ScheduledTime: time.Date(2025, time.February, 9, 18, 0, 0, 0, time.UTC), WinnerID: ptr(4)},
		{TournamentID: 3, ScheduledTime: time.Date(2025, time.June, 22, 19, 0, 0, 0, time.UTC)},
		{TournamentID: 1, ScheduledTime: time.Date(2024, time.October, 27, 13, 0, 0, 0, time.UTC), WinnerID: ptr(1)},
	} {
		m.ID = s.id("matches")
		s.matches = append(s.matches, m)
	}

	for _, pair := range [][2]int{{1, 1}, {1, 2}, {2, 4}, {2, 3}, {3, 5}, {3, 2}, {4, 1}, {4, 3}} {
		s.matchTeams = append(s.matchTeams, models.MatchTeam{ID: s.id("match_teams"), MatchID: pair[0], TeamID: pair[1]})
	}

	for _, pair := range [][2]int{{1, 1}, {2, 2}, {3, 3}, {1, 4}} {
		s.tournamentMatches = append(s.tournamentMatches, models.TournamentMatch{
			ID: s.id("tournament_matches"), TournamentID: pair[0], MatchID: pair[1],
		})
	}
}

func invalidRef(field string, id int) error {
	return fmt.Errorf("%w (%s=%d)", repositories.ErrInvalidReference, field, id)
}

func findIndex[T any](rows []T, match func(T) bool) int {
	return slices.IndexFunc(rows, match)
}

func (s *MemStore) teamByID(id int) *models.Team {
	if i := findIndex(s.teams, func(t models.Team) bool { return t.ID == id }); i >= 0 {
		return &s.teams[i]
	}
	return nil
}

func (s *MemStore) gameByID(id int) *models.Game {
	if i := findIndex(s.games, func(g models.Game) bool { return g.ID == id }); i >= 0 {
		return &s.games[i]
	}
	return nil
}

func (s *MemStore) tournamentByID(id int) *models.Tournament {
	if i := findIndex(s.tournaments, func(t models.Tournament) bool { return t.ID == id }); i >= 0 {
		return &s.tournaments[i]
	}
	return nil
}

func (s *MemStore) matchByID(id int) *models.Match {
	if i := findIndex(s.matches, func(m models.Match) bool { return m.ID == id }); i >= 0 {
		return &s.matches[i]
	}
	return nil
}

func (s *MemStore) checkTournamentRefs(t *models.Tournament) error {
	if t.GameID != nil && s.gameByID(*t.GameID) == nil {
		return invalidRef("game_id", *t.GameID)
	}
	return nil
}

func (s *MemStore) checkMatchRefs(m *models.Match) error {
	if s.tournamentByID(m.TournamentID) == nil {
		return invalidRef("tournament_id", m.TournamentID)
	}
	if m.WinnerID != nil && s.teamByID(*m.WinnerID) == nil {
		return invalidRef("winner_id", *m.WinnerID)
	}
	return nil
}

func (s *MemStore) checkMatchTeam(mt *models.MatchTeam) error {
	if s.matchByID(mt.MatchID) == nil {
		return invalidRef("match_id", mt.MatchID)
	}
	if s.teamByID(mt.TeamID) == nil {
		return invalidRef("team_id", mt.TeamID)
	}
	for _, existing := range s.matchTeams {
		if existing.ID != mt.ID && existing.MatchID == mt.MatchID && existing.TeamID == mt.TeamID {
			return fmt.Errorf("%w (match_teams_match_id_team_id_key)", repositories.ErrDuplicate)
		}
	}
	return nil
}

func (s *MemStore) checkTournamentMatch(tm *models.TournamentMatch) error {
	if s.tournamentByID(tm.TournamentID) == nil {
		return invalidRef("tournament_id", tm.TournamentID)
	}
	if s.matchByID(tm.MatchID) == nil {
		return invalidRef("match_id", tm.MatchID)
	}
	for _, existing := range s.tournamentMatches {
		if existing.ID != tm.ID && existing.TournamentID == tm.TournamentID && existing.MatchID == tm.MatchID {
			return fmt.Errorf("%w (tournament_matches_tournament_id_match_id_key)", repositories.ErrDuplicate)
		}
	}
	return nil
}

// cascade helpers, called with s.mu held

func (s *MemStore) deleteMatch(id int) {
	s.matchTeams = slices.DeleteFunc(s.matchTeams, func(mt models.MatchTeam) bool { return mt.MatchID == id })
	s.tournamentMatches = slices.DeleteFunc(s.tournamentMatches, func(tm models.TournamentMatch) bool { return tm.MatchID == id })
	s.matches = slices.DeleteFunc(s.matches, func(m models.Match) bool { return m.ID == id })
}

func (s *MemStore) deleteTournament(id int) {
	for _, m := range slices.Clone(s.matches) {
		if m.TournamentID == id {
			s.deleteMatch(m.ID)
		}
	}
	s.tournamentMatches = slices.DeleteFunc(s.tournamentMatches, func(tm models.TournamentMatch) bool { return tm.TournamentID == id })
	s.tournaments = slices.DeleteFunc(s.tournaments, func(t models.Tournament) bool { return t.ID == id })
}

func (s *MemStore) deleteTeam(id int) {
	s.matchTeams = slices.DeleteFunc(s.matchTeams, func(mt models.MatchTeam) bool { return mt.TeamID == id })
	for i := range s.matches {
		if s.matches[i].WinnerID != nil && *s.matches[i].WinnerID == id {
			s.matches[i].WinnerID = nil
		}
	}
	s.teams = slices.DeleteFunc(s.teams, func(t models.Team) bool { return t.ID == id })
}

func (s *MemStore) deleteGame(id int) {
	for i := range s.tournaments {
		if s.tournaments[i].GameID != nil && *s.tournaments[i].GameID == id {
			s.tournaments[i].GameID = nil
		}
	}
	s.games = slices.DeleteFunc(s.games, func(g models.Game) bool { return g.ID == id })
}

// ---- teams ----

type memTeamRepo struct{ s *MemStore }

func (r memTeamRepo) Create(_ context.Context, team *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("teams.Create"); err != nil {
		return err
	}
	team.ID = r.s.id("teams")
	r.s.teams = append(r.s.teams, *team)
	return nil
}

func (r memTeamRepo) GetAll(_ context.Context) ([]models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("teams.GetAll"); err != nil {
		return nil, err
	}
	return slices.Clone(r.s.teams), nil
}

func (r memTeamRepo) Update(_ context.Context, team *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("teams.Update"); err != nil {
		return err
	}
	existing := r.s.teamByID(team.ID)
	if existing == nil {
		return repositories.ErrTeamNotFound
	}
	*existing = *team
	return nil
}

func (r memTeamRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("teams.Delete"); err != nil {
		return err
	}
	r.s.deleteTeam(id)
	return nil
}

// ---- games ----

type memGameRepo struct{ s *MemStore }

func (r memGameRepo) Create(_ context.Context, game *models.Game) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("games.Create"); err != nil {
		return err
	}
	game.ID = r.s.id("games")
	r.s.games = append(r.s.games, *game)
	return nil
}

func (r memGameRepo) GetAll(_ context.Context) ([]models.Game, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("games.GetAll"); err != nil {
		return nil, err
	}
	return slices.Clone(r.s.games), nil
}

func (r memGameRepo) Update(_ context.Context, game *models.Game) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("games.Update"); err != nil {
		return err
	}
	existing := r.s.gameByID(game.ID)
	if existing == nil {
		return repositories.ErrGameNotFound
	}
	*existing = *game
	return nil
}

func (r memGameRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("games.Delete"); err != nil {
		return err
	}
	r.s.deleteGame(id)
	return nil
}

// ---- tournaments ----

type memTournamentRepo struct{ s *MemStore }

func (r memTournamentRepo) Create(_ context.Context, t *models.Tournament) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("tournaments.Create"); err != nil {
		return err
	}
	if err := r.s.checkTournamentRefs(t); err != nil {
		return err
	}
	t.ID = r.s.id("tournaments")
	row := *t
	row.GameTitle = nil
	r.s.tournaments = append(r.s.tournaments, row)
	return nil
}

func (r memTournamentRepo) GetAll(_ context.Context) ([]models.Tournament, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("tournaments.GetAll"); err != nil {
		return nil, err
	}
	out := make([]models.Tournament, 0, len(r.s.tournaments))
	for _, t := range r.s.tournaments {
		if t.GameID != nil {
			if g := r.s.gameByID(*t.GameID); g != nil {
				t.GameTitle = ptr(g.Title)
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (r memTournamentRepo) Update(_ context.Context, t *models.Tournament) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("tournaments.Update"); err != nil {
		return err
	}
	existing := r.s.tournamentByID(t.ID)
	if existing == nil {
		return repositories.ErrTournamentNotFound
	}
	if err := r.s.checkTournamentRefs(t); err != nil {
		return err
	}
	*existing = *t
	existing.GameTitle = nil
	return nil
}

func (r memTournamentRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("tournaments.Delete"); err != nil {
		return err
	}
	r.s.deleteTournament(id)
	return nil
}

// ---- matches ----

type memMatchRepo struct{ s *MemStore }

func (r memMatchRepo) Create(_ context.Context, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("matches.Create"); err != nil {
		return err
	}
	if err := r.s.checkMatchRefs(m); err != nil {
		return err
	}
	m.ID = r.s.id("matches")
	row := *m
	row.TournamentName, row.WinnerName = nil, nil
	r.s.matches = append(r.s.matches, row)
	return nil
}

func (r memMatchRepo) GetAll(_ context.Context) ([]models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("matches.GetAll"); err != nil {
		return nil, err
	}
	out := make([]models.Match, 0, len(r.s.matches))
	for _, m := range r.s.matches {
		if t := r.s.tournamentByID(m.TournamentID); t != nil {
			m.TournamentName = ptr(t.Name)
		}
		if m.WinnerID != nil {
			if w := r.s.teamByID(*m.WinnerID); w != nil {
				m.WinnerName = ptr(w.Name)
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func (r memMatchRepo) Update(_ context.Context, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("matches.Update"); err != nil {
		return err
	}
	existing := r.s.matchByID(m.ID)
	if existing == nil {
		return repositories.ErrMatchNotFound
	}
	if err := r.s.checkMatchRefs(m); err != nil {
		return err
	}
	*existing = *m
	existing.TournamentName, existing.WinnerName = nil, nil
	return nil
}

func (r memMatchRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("matches.Delete"); err != nil {
		return err
	}
	r.s.deleteMatch(id)
	return nil
}

// ---- match teams ----

type memMatchTeamRepo struct{ s *MemStore }

func (r memMatchTeamRepo) Create(_ context.Context, mt *models.MatchTeam) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("matchTeams.Create"); err != nil {
		return err
	}
	if err := r.s.checkMatchTeam(mt); err != nil {
		return err
	}
	mt.ID = r.s.id("match_teams")
	r.s.matchTeams = append(r.s.matchTeams, models.MatchTeam{ID: mt.ID, MatchID: mt.MatchID, TeamID: mt.TeamID})
	return nil
}

// GetAll skips rows without a team, like the INNER JOIN in the postgres query.
func (r memMatchTeamRepo) GetAll(_ context.Context) ([]models.MatchTeam, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("matchTeams.GetAll"); err != nil {
		return nil, err
	}
	out := make([]models.MatchTeam, 0, len(r.s.matchTeams))
	for _, mt := range r.s.matchTeams {
		team := r.s.teamByID(mt.TeamID)
		if team == nil {
			continue
		}
		mt.TeamName = team.Name
		if m := r.s.matchByID(mt.MatchID); m != nil {
			mt.MatchScheduledTime = ptr(m.ScheduledTime)
		}
		out = append(out, mt)
	}
	slices.SortStableFunc(out, func(a, b models.MatchTeam) int {
		if a.MatchID != b.MatchID {
			return a.MatchID - b.MatchID
		}
		return a.ID - b.ID
	})
	return out, nil
}

func (r memMatchTeamRepo) Update(_ context.Context, mt *models.MatchTeam) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("matchTeams.Update"); err != nil {
		return err
	}
	i := findIndex(r.s.matchTeams, func(row models.MatchTeam) bool { return row.ID == mt.ID })
	if i < 0 {
		return repositories.ErrMatchTeamNotFound
	}
	if err := r.s.checkMatchTeam(mt); err != nil {
		return err
	}
	r.s.matchTeams[i] = models.MatchTeam{ID: mt.ID, MatchID: mt.MatchID, TeamID: mt.TeamID}
	return nil
}

func (r memMatchTeamRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("matchTeams.Delete"); err != nil {
		return err
	}
	r.s.matchTeams = slices.DeleteFunc(r.s.matchTeams, func(mt models.MatchTeam) bool { return mt.ID == id })
	return nil
}

// ---- tournament matches ----

type memTournamentMatchRepo struct{ s *MemStore }

func (r memTournamentMatchRepo) Create(_ context.Context, tm *models.TournamentMatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("tournamentMatches.Create"); err != nil {
		return err
	}
	if err := r.s.checkTournamentMatch(tm); err != nil {
		return err
	}
	tm.ID = r.s.id("tournament_matches")
	r.s.tournamentMatches = append(r.s.tournamentMatches, models.TournamentMatch{
		ID: tm.ID, TournamentID: tm.TournamentID, MatchID: tm.MatchID,
	})
	return nil
}

func (r memTournamentMatchRepo) GetAll(_ context.Context) ([]models.TournamentMatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("tournamentMatches.GetAll"); err != nil {
		return nil, err
	}
	out := make([]models.TournamentMatch, 0, len(r.s.tournamentMatches))
	for _, tm := range r.s.tournamentMatches {
		if t := r.s.tournamentByID(tm.TournamentID); t != nil {
			tm.TournamentName = ptr(t.Name)
		}
		if m := r.s.matchByID(tm.MatchID); m != nil {
			tm.MatchScheduledTime = ptr(m.ScheduledTime)
		}
		out = append(out, tm)
	}
	return out, nil
}

func (r memTournamentMatchRepo) Update(_ context.Context, tm *models.TournamentMatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("tournamentMatches.Update"); err != nil {
		return err
	}
	i := findIndex(r.s.tournamentMatches, func(row models.TournamentMatch) bool { return row.ID == tm.ID })
	if i < 0 {
		return repositories.ErrTournamentMatchNotFound
	}
	if err := r.s.checkTournamentMatch(tm); err != nil {
		return err
	}
	r.s.tournamentMatches[i] = models.TournamentMatch{ID: tm.ID, TournamentID: tm.TournamentID, MatchID: tm.MatchID}
	return nil
}

func (r memTournamentMatchRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("tournamentMatches.Delete"); err != nil {
		return err
	}
	r.s.tournamentMatches = slices.DeleteFunc(r.s.tournamentMatches, func(tm models.TournamentMatch) bool { return tm.ID == id })
	return nil
}

// ---- admin ----

type memAdminRepo struct{ s *MemStore }

func (r memAdminRepo) Reset(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("admin.Reset"); err != nil {
		return err
	}
	r.s.reset()
	return nil
}

func (r memAdminRepo) Ping(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.fail("admin.Ping")
}
