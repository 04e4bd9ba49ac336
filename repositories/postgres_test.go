package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/esports-admin/models"
	"github.com/Dosada05/esports-admin/repositories"
	"github.com/Dosada05/esports-admin/testutil"
)

func TestPostgresSeedAndJoins(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	teams, err := repositories.NewPostgresTeamRepository(conn).GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(teams) != 5 || teams[0].Name != "T1" {
		t.Errorf("teams = %+v", teams)
	}

	matches, err := repositories.NewPostgresMatchRepository(conn).GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 4 {
		t.Fatalf("len(matches) = %d, want 4", len(matches))
	}
	for _, m := range matches {
		if m.TournamentName == nil {
			t.Errorf("match %d has no tournament name", m.ID)
		}
		if (m.WinnerID == nil) != (m.WinnerName == nil) {
			t.Errorf("match %d winner id/name mismatch", m.ID)
		}
	}

	matchTeams, err := repositories.NewPostgresMatchTeamRepository(conn).GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(matchTeams) != 8 || matchTeams[0].TeamName == "" || matchTeams[0].MatchScheduledTime == nil {
		t.Errorf("match teams = %+v", matchTeams)
	}
}

func TestPostgresTeamLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()
	teamRepo := repositories.NewPostgresTeamRepository(conn)
	matchTeamRepo := repositories.NewPostgresMatchTeamRepository(conn)

	alpha := &models.Team{Name: "Alpha", Region: "NA", PlayerCount: 5}
	if err := teamRepo.Create(ctx, alpha); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if alpha.ID == 0 {
		t.Fatal("Create() did not set ID")
	}

	if err := matchTeamRepo.Create(ctx, &models.MatchTeam{MatchID: 1, TeamID: alpha.ID}); err != nil {
		t.Fatalf("MatchTeam Create() error = %v", err)
	}

	alpha.PlayerCount = 6
	if err := teamRepo.Update(ctx, alpha); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := teamRepo.Update(ctx, &models.Team{ID: 99999, Name: "x", Region: "y"}); !errors.Is(err, repositories.ErrTeamNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrTeamNotFound", err)
	}

	if err := teamRepo.Delete(ctx, alpha.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := teamRepo.Delete(ctx, alpha.ID); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}

	rows, _ := matchTeamRepo.GetAll(ctx)
	for _, mt := range rows {
		if mt.TeamID == alpha.ID {
			t.Errorf("match team %d survived team delete", mt.ID)
		}
	}
}

func TestPostgresDeleteTeamClearsWinner(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := repositories.NewPostgresTeamRepository(conn).Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	matches, _ := repositories.NewPostgresMatchRepository(conn).GetAll(ctx)
	if len(matches) != 4 {
		t.Fatalf("matches must survive a winner delete, got %d", len(matches))
	}
	for _, m := range matches {
		if m.WinnerID != nil && *m.WinnerID == 1 {
			t.Errorf("match %d still won by deleted team", m.ID)
		}
	}
}

func TestPostgresDeleteTournamentCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := repositories.NewPostgresTournamentRepository(conn).Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}

	matches, _ := repositories.NewPostgresMatchRepository(conn).GetAll(ctx)
	links, _ := repositories.NewPostgresTournamentMatchRepository(conn).GetAll(ctx)
	matchTeams, _ := repositories.NewPostgresMatchTeamRepository(conn).GetAll(ctx)
	if len(matches) != 2 || len(links) != 2 || len(matchTeams) != 4 {
		t.Errorf("after delete: %d matches, %d links, %d match teams", len(matches), len(links), len(matchTeams))
	}
}

func TestPostgresConstraintErrors(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	err := repositories.NewPostgresMatchRepository(conn).Create(ctx, &models.Match{
		TournamentID: 99999, ScheduledTime: time.Now(),
	})
	if !errors.Is(err, repositories.ErrInvalidReference) {
		t.Errorf("Create(bad tournament) error = %v, want ErrInvalidReference", err)
	}

	err = repositories.NewPostgresMatchTeamRepository(conn).Create(ctx, &models.MatchTeam{MatchID: 1, TeamID: 1})
	if !errors.Is(err, repositories.ErrDuplicate) {
		t.Errorf("Create(duplicate) error = %v, want ErrDuplicate", err)
	}

	err = repositories.NewPostgresTeamRepository(conn).Create(ctx, &models.Team{Name: "x", Region: "y", PlayerCount: -1})
	if !errors.Is(err, repositories.ErrCheckViolation) {
		t.Errorf("Create(negative players) error = %v, want ErrCheckViolation", err)
	}
}

func TestPostgresAdminReset(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()
	admin := repositories.NewPostgresAdminRepository(conn)
	games := repositories.NewPostgresGameRepository(conn)

	if err := games.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := admin.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	list, _ := games.GetAll(ctx)
	if len(list) != 4 || list[0].ID != 1 {
		t.Errorf("after reset games = %+v", list)
	}
	if err := admin.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
