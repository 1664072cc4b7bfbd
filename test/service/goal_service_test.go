package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maxviazov/futbol-stats-service/internal/repository"
	"github.com/maxviazov/futbol-stats-service/internal/service"
)

type goalFixture struct {
	players *fakePlayerRepo
	matches *fakeMatchRepo
	goals   *fakeGoalRepo
	svc     service.GoalService
}

func newGoalFixture(t *testing.T) *goalFixture {
	t.Helper()
	f := &goalFixture{
		players: newFakePlayerRepo(),
		matches: newFakeMatchRepo(),
		goals:   newFakeGoalRepo(),
	}
	f.svc = service.NewGoalService(f.goals, f.players, f.matches, &fakeTx{}, zerolog.New(io.Discard))
	return f
}

func (f *goalFixture) seed(t *testing.T, players []string, dates []string) {
	t.Helper()
	ctx := context.Background()
	for _, name := range players {
		if _, err := f.players.Create(ctx, playerNamed(name)); err != nil {
			t.Fatalf("seed player %s: %v", name, err)
		}
	}
	for _, date := range dates {
		if _, err := f.matches.Create(ctx, matchOn(date)); err != nil {
			t.Fatalf("seed match %s: %v", date, err)
		}
	}
}

func TestGoalService_RecordGoals_Validation(t *testing.T) {
	f := newGoalFixture(t)
	f.seed(t, []string{"Bruno"}, []string{"2025-07-18"})
	ctx := context.Background()

	cases := []struct {
		name    string
		player  string
		date    string
		goals   int
		wantErr error
	}{
		{"negative goals", "Bruno", "2025-07-18", -1, service.ErrInvalidInput},
		{"empty player", "", "2025-07-18", 1, service.ErrInvalidInput},
		{"bad date", "Bruno", "18/07/2025", 1, service.ErrInvalidInput},
		{"unknown player", "Fantasma", "2025-07-18", 1, repository.ErrNotFound},
		{"unknown match", "Bruno", "1999-01-01", 1, repository.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.RecordGoals(ctx, tc.player, tc.date, tc.goals)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}

	// Failed attempts must not leave partial state behind.
	if entries, _ := f.goals.ListByPlayer(ctx, "Bruno"); len(entries) != 0 {
		t.Fatalf("unexpected goal entries after failed operations: %+v", entries)
	}
}

func TestGoalService_RecordGoals_OverwritesNotAdds(t *testing.T) {
	f := newGoalFixture(t)
	f.seed(t, []string{"Bruno"}, []string{"2025-07-18"})
	ctx := context.Background()

	if _, err := f.svc.RecordGoals(ctx, "Bruno", "2025-07-18", 3); err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	entry, err := f.svc.RecordGoals(ctx, "Bruno", "2025-07-18", 1)
	if err != nil {
		t.Fatalf("second record failed: %v", err)
	}
	if entry.Goals != 1 {
		t.Fatalf("expected overwrite to 1, got %d", entry.Goals)
	}

	entries, _ := f.goals.ListByPlayer(ctx, "Bruno")
	if len(entries) != 1 {
		t.Fatalf("expected a single entry per pair, got %d", len(entries))
	}
	if entries[0].Goals != 1 {
		t.Fatalf("stored count must be the final value, got %d", entries[0].Goals)
	}
}

func TestGoalService_RemoveGoals(t *testing.T) {
	f := newGoalFixture(t)
	f.seed(t, []string{"Bruno"}, []string{"2025-07-18"})
	ctx := context.Background()

	if err := f.svc.RemoveGoals(ctx, "Fantasma", "2025-07-18"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unknown player: want ErrNotFound, got %v", err)
	}
	if err := f.svc.RemoveGoals(ctx, "Bruno", "2025-07-18"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("no entry yet: want ErrNotFound, got %v", err)
	}

	if _, err := f.svc.RecordGoals(ctx, "Bruno", "2025-07-18", 2); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := f.svc.RemoveGoals(ctx, "Bruno", "2025-07-18"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if entries, _ := f.goals.ListByPlayer(ctx, "Bruno"); len(entries) != 0 {
		t.Fatalf("entry survived removal: %+v", entries)
	}
}
