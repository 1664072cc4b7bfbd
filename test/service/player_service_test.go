package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maxviazov/futbol-stats-service/internal/model"
	"github.com/maxviazov/futbol-stats-service/internal/repository"
	"github.com/maxviazov/futbol-stats-service/internal/service"
)

func newPlayerService(players repository.PlayerRepository, goals repository.GoalRepository) service.PlayerService {
	return service.NewPlayerService(players, goals, zerolog.New(io.Discard))
}

func TestPlayerService_CreatePlayer_Validation(t *testing.T) {
	svc := newPlayerService(newFakePlayerRepo(), newFakeGoalRepo())

	cases := []struct {
		name    string
		player  string
		birth   *string
		wantErr bool
		field   string
	}{
		{"empty name", "", nil, true, "nombre"},
		{"whitespace name", "   ", nil, true, "nombre"},
		{"bad birth date", "Bruno", strPtr("not-a-date"), true, "nacimiento"},
		{"ok", "Bruno", strPtr("1990-05-01"), false, ""},
		{"ok without optionals", "Dante", nil, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreatePlayer(context.Background(), tc.player, tc.birth, nil, nil)
			if tc.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got err=%v", tc.wantErr, err)
			}
			if tc.wantErr {
				if !errors.Is(err, service.ErrInvalidInput) {
					t.Fatalf("want invalid input err, got %v", err)
				}
				found := false
				for _, fe := range service.FieldErrors(err) {
					if fe.Field == tc.field {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("missing field error %s", tc.field)
				}
			}
		})
	}
}

func TestPlayerService_CreatePlayer_DuplicateRejected(t *testing.T) {
	players := newFakePlayerRepo()
	svc := newPlayerService(players, newFakeGoalRepo())
	ctx := context.Background()

	first, err := svc.CreatePlayer(ctx, "Bruno", strPtr("1990-05-01"), strPtr("zurdo"), nil)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreatePlayer(ctx, "Bruno", nil, nil, nil); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// The original record must survive the rejected duplicate untouched.
	got, err := players.GetByName(ctx, "Bruno")
	if err != nil {
		t.Fatalf("get after duplicate failed: %v", err)
	}
	if got.BirthDate == nil || *got.BirthDate != *first.BirthDate || got.Trait == nil || *got.Trait != "zurdo" {
		t.Fatalf("existing record mutated by duplicate create: %+v", got)
	}
}

func TestPlayerService_DeletePlayer(t *testing.T) {
	players := newFakePlayerRepo()
	svc := newPlayerService(players, newFakeGoalRepo())
	ctx := context.Background()

	if _, err := svc.DeletePlayer(ctx, "Nadie"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.CreatePlayer(ctx, "Mate", nil, nil, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	deleted, err := svc.DeletePlayer(ctx, "Mate")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.Name != "Mate" {
		t.Fatalf("expected deleted record back, got %+v", deleted)
	}
	if _, err := players.GetByName(ctx, "Mate"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("player still present after delete")
	}
}

func TestPlayerService_EditPlayer(t *testing.T) {
	players := newFakePlayerRepo()
	svc := newPlayerService(players, newFakeGoalRepo())
	ctx := context.Background()

	if _, err := svc.EditPlayer(ctx, "Nadie", model.PlayerPatch{Trait: strPtr("veloz")}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.CreatePlayer(ctx, "Dante", nil, nil, strPtr("come pasto")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	out, err := svc.EditPlayer(ctx, "Dante", model.PlayerPatch{Trait: strPtr("goleador")})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if out.Trait == nil || *out.Trait != "goleador" {
		t.Fatalf("trait not updated: %+v", out)
	}
	if out.FunFact == nil || *out.FunFact != "come pasto" {
		t.Fatalf("nil patch field must leave value untouched: %+v", out)
	}
}
