package contract

import (
	"context"
	"testing"

	"github.com/maxviazov/futbol-stats-service/internal/model"
	"github.com/maxviazov/futbol-stats-service/internal/repository"
)

// Player contracts

type PlayerFactory func(t *testing.T) (repository.PlayerRepository, func())

type MatchFactory func(t *testing.T) (repository.MatchRepository, func())

type GoalFactory func(t *testing.T) (repo repository.GoalRepository, mkPlayer func(ctx context.Context, name string) error, mkMatch func(ctx context.Context, date string) error, cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, players repository.PlayerRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func strPtr(s string) *string { return &s }

func RunPlayerRepositoryContract(t *testing.T, makeRepo PlayerFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Player{Name: "Bruno", BirthDate: strPtr("1994-05-02"), Trait: strPtr("zurdo")})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetByName(ctx, "Bruno")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != created.Name || got.BirthDate == nil || *got.BirthDate != "1994-05-02" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByName(context.Background(), "Fantasma")
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create_duplicate_name_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.Player{Name: "Dup"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, model.Player{Name: "Dup"})
		if err == nil || err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("update_patch_preserves_unset_fields", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.Player{Name: "Ana", Trait: strPtr("veloz"), FunFact: strPtr("canta")}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		got, err := repo.Update(ctx, "Ana", model.PlayerPatch{Trait: strPtr("goleadora")})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Trait == nil || *got.Trait != "goleadora" {
			t.Fatalf("trait not updated: %+v", got)
		}
		if got.FunFact == nil || *got.FunFact != "canta" {
			t.Fatalf("fun fact should be untouched: %+v", got)
		}
	})

	t.Run("delete_returns_record", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.Player{Name: "Bea"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		gone, err := repo.Delete(ctx, "Bea")
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if gone.Name != "Bea" {
			t.Fatalf("unexpected deleted record: %+v", gone)
		}
		if _, err := repo.GetByName(ctx, "Bea"); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("names_sorted", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, n := range []string{"Cata", "Ana", "Bea"} {
			if _, err := repo.Create(ctx, model.Player{Name: n}); err != nil {
				t.Fatalf("seed %s: %v", n, err)
			}
		}
		names, err := repo.Names(ctx)
		if err != nil {
			t.Fatalf("names: %v", err)
		}
		if len(names) != 3 || names[0] != "Ana" || names[1] != "Bea" || names[2] != "Cata" {
			t.Fatalf("unexpected names: %v", names)
		}
	})
}

func RunMatchRepositoryContract(t *testing.T, makeRepo MatchFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Match{Date: "2025-07-18", Venue: strPtr("Cancha 5")})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetByDate(ctx, "2025-07-18")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Date != created.Date || got.Venue == nil || *got.Venue != "Cancha 5" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByDate(context.Background(), "1999-01-01")
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create_duplicate_date_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.Match{Date: "2024-12-09"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, model.Match{Date: "2024-12-09"})
		if err == nil || err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("dates_roundtrip_day_format", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, d := range []string{"2025-07-18", "2024-12-09"} {
			if _, err := repo.Create(ctx, model.Match{Date: d}); err != nil {
				t.Fatalf("seed %s: %v", d, err)
			}
		}
		dates, err := repo.Dates(ctx)
		if err != nil {
			t.Fatalf("dates: %v", err)
		}
		if len(dates) != 2 {
			t.Fatalf("expected 2 dates, got %v", dates)
		}
		for _, d := range dates {
			if len(d) != 10 {
				t.Fatalf("date not in day format: %q", d)
			}
		}
	})
}

func RunGoalRepositoryContract(t *testing.T, makeRepo GoalFactory) {
	t.Helper()

	t.Run("upsert_overwrites", func(t *testing.T) {
		repo, mkPlayer, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := mkPlayer(ctx, "Bruno"); err != nil {
			t.Fatalf("seed player: %v", err)
		}
		if err := mkMatch(ctx, "2025-07-18"); err != nil {
			t.Fatalf("seed match: %v", err)
		}
		e1, err := repo.Upsert(ctx, "Bruno", "2025-07-18", 2)
		if err != nil {
			t.Fatalf("upsert1: %v", err)
		}
		if e1.Goals != 2 {
			t.Fatalf("unexpected goals: %d", e1.Goals)
		}
		e2, err := repo.Upsert(ctx, "Bruno", "2025-07-18", 5)
		if err != nil {
			t.Fatalf("upsert2: %v", err)
		}
		if e2.Goals != 5 {
			t.Fatalf("upsert didn't overwrite: %d", e2.Goals)
		}
		list, err := repo.ListByPlayer(ctx, "Bruno")
		if err != nil {
			t.Fatalf("list by player: %v", err)
		}
		if len(list) != 1 || list[0].Goals != 5 {
			t.Fatalf("expected single overwritten entry, got %+v", list)
		}
	})

	t.Run("upsert_fk_violation_conflict", func(t *testing.T) {
		repo, _, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Upsert(context.Background(), "Fantasma", "2025-07-18", 1)
		if err == nil || err != repository.ErrConflict {
			t.Fatalf("expected ErrConflict on FK violation, got %v", err)
		}
	})

	t.Run("delete_missing_not_found", func(t *testing.T) {
		repo, _, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		err := repo.Delete(context.Background(), "Fantasma", "2025-07-18")
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_empty_ok", func(t *testing.T) {
		repo, mkPlayer, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := mkPlayer(ctx, "Sola"); err != nil {
			t.Fatalf("seed player: %v", err)
		}
		list, err := repo.ListByPlayer(ctx, "Sola")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty list, got %d", len(list))
		}
	})

	t.Run("list_by_match_ordered_by_player", func(t *testing.T) {
		repo, mkPlayer, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := mkMatch(ctx, "2024-12-09"); err != nil {
			t.Fatalf("seed match: %v", err)
		}
		for _, n := range []string{"Cata", "Ana"} {
			if err := mkPlayer(ctx, n); err != nil {
				t.Fatalf("seed %s: %v", n, err)
			}
			if _, err := repo.Upsert(ctx, n, "2024-12-09", 1); err != nil {
				t.Fatalf("upsert %s: %v", n, err)
			}
		}
		list, err := repo.ListByMatch(ctx, "2024-12-09")
		if err != nil {
			t.Fatalf("list by match: %v", err)
		}
		if len(list) != 2 || list[0].PlayerName != "Ana" || list[1].PlayerName != "Cata" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, players, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := players.Create(ctx, model.Player{Name: "TxCommit"})
			return err
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := players.GetByName(ctx, "TxCommit"); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, players, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		errMarker := assertErr("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := players.Create(ctx, model.Player{Name: "TxRollback"}); err != nil {
				return err
			}
			return errMarker
		})
		if err == nil || err.Error() != errMarker.Error() {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := players.GetByName(ctx, "TxRollback"); err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

// assertErr builds a sentinel error without importing errors to keep helpers local.
func assertErr(msg string) error { return &sentinel{msg} }

type sentinel struct{ s string }

func (e *sentinel) Error() string { return e.s }
