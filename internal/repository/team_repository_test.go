package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"
)

func TestCreateTeamDuplicateName(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	ctx := context.Background()

	team, err := repo.CreateTeam(ctx, "Alpha")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if team.ID == "" || team.Name != "Alpha" {
		t.Fatalf("team=%+v", team)
	}

	if _, err := repo.CreateTeam(ctx, "Alpha"); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err=%v want ErrDuplicatedKey", err)
	}
}

func TestCreateTeamConcurrentDuplicateHasOneWinner(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateTeam(ctx, "Alpha")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("wins=%d want 1", wins)
	}
}

func TestAssignUserCreatesAndReparents(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	ctx := context.Background()

	alpha, err := repo.CreateTeam(ctx, "Alpha")
	if err != nil {
		t.Fatalf("create alpha: %v", err)
	}
	beta, err := repo.CreateTeam(ctx, "Beta")
	if err != nil {
		t.Fatalf("create beta: %v", err)
	}

	user, err := repo.AssignUser(ctx, "alice", alpha.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if user.TeamID == nil || *user.TeamID != alpha.ID {
		t.Fatalf("user=%+v want team %s", user, alpha.ID)
	}

	// last assignment wins
	user, err = repo.AssignUser(ctx, "alice", beta.ID)
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if user.TeamID == nil || *user.TeamID != beta.ID {
		t.Fatalf("user=%+v want team %s", user, beta.ID)
	}

	alphaMembers, err := repo.MembersOf(ctx, alpha.ID)
	if err != nil {
		t.Fatalf("members alpha: %v", err)
	}
	if len(alphaMembers) != 0 {
		t.Fatalf("alpha members=%d want 0", len(alphaMembers))
	}
	betaMembers, err := repo.MembersOf(ctx, beta.ID)
	if err != nil {
		t.Fatalf("members beta: %v", err)
	}
	if len(betaMembers) != 1 || betaMembers[0].Name != "alice" {
		t.Fatalf("beta members=%+v", betaMembers)
	}
}

func TestAssignUserConcurrentFirstAssignment(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	ctx := context.Background()

	team, err := repo.CreateTeam(ctx, "Alpha")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.AssignUser(ctx, "alice", team.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("assign: %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("users=%d want 1", len(users))
	}
	if users[0].TeamID == nil || *users[0].TeamID != team.ID {
		t.Fatalf("user=%+v want team %s", users[0], team.ID)
	}
}

func TestMembersOfEmptyTeam(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	ctx := context.Background()

	team, err := repo.CreateTeam(ctx, "Empty")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	members, err := repo.MembersOf(ctx, team.ID)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("members=%d want 0", len(members))
	}
}

func TestListTeamsAndUsersOrdered(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Zulu", "Alpha", "Mike"} {
		if _, err := repo.CreateTeam(ctx, name); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	alpha, err := repo.FindTeamByName(ctx, "Alpha")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	for _, user := range []string{"carol", "alice", "bob"} {
		if _, err := repo.AssignUser(ctx, user, alpha.ID); err != nil {
			t.Fatalf("assign %s: %v", user, err)
		}
	}

	teams, err := repo.ListTeams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	wantTeams := []string{"Alpha", "Mike", "Zulu"}
	for i, name := range wantTeams {
		if teams[i].Name != name {
			t.Fatalf("teams[%d]=%s want %s", i, teams[i].Name, name)
		}
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	wantUsers := []string{"alice", "bob", "carol"}
	for i, name := range wantUsers {
		if users[i].Name != name {
			t.Fatalf("users[%d]=%s want %s", i, users[i].Name, name)
		}
	}
}

func TestFindTeamByNameMissing(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))
	if _, err := repo.FindTeamByName(context.Background(), "Ghost"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err=%v want ErrRecordNotFound", err)
	}
}
