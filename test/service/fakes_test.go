package service_test

import (
	"context"
	"sort"

	"github.com/maxviazov/futbol-stats-service/internal/model"
	"github.com/maxviazov/futbol-stats-service/internal/repository"
)

// In-memory repositories backing the service tests. They mirror the store's
// contract: sentinel errors, upsert-overwrite on the composite pair, and
// arbitrary iteration order so sorting stays the service's job.

type fakePlayerRepo struct {
	players map[string]model.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string]model.Player)}
}

func (f *fakePlayerRepo) Create(_ context.Context, p model.Player) (model.Player, error) {
	if _, ok := f.players[p.Name]; ok {
		return model.Player{}, repository.ErrAlreadyExists
	}
	f.players[p.Name] = p
	return p, nil
}

func (f *fakePlayerRepo) GetByName(_ context.Context, name string) (model.Player, error) {
	p, ok := f.players[name]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePlayerRepo) Update(_ context.Context, name string, patch model.PlayerPatch) (model.Player, error) {
	p, ok := f.players[name]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	if patch.BirthDate != nil {
		p.BirthDate = patch.BirthDate
	}
	if patch.Trait != nil {
		p.Trait = patch.Trait
	}
	if patch.FunFact != nil {
		p.FunFact = patch.FunFact
	}
	f.players[name] = p
	return p, nil
}

func (f *fakePlayerRepo) Delete(_ context.Context, name string) (model.Player, error) {
	p, ok := f.players[name]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	delete(f.players, name)
	return p, nil
}

func (f *fakePlayerRepo) Names(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(f.players))
	for name := range f.players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

var _ repository.PlayerRepository = (*fakePlayerRepo)(nil)

type fakeMatchRepo struct {
	matches map[string]model.Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[string]model.Match)}
}

func (f *fakeMatchRepo) Create(_ context.Context, m model.Match) (model.Match, error) {
	if _, ok := f.matches[m.Date]; ok {
		return model.Match{}, repository.ErrAlreadyExists
	}
	f.matches[m.Date] = m
	return m, nil
}

func (f *fakeMatchRepo) GetByDate(_ context.Context, date string) (model.Match, error) {
	m, ok := f.matches[date]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeMatchRepo) Update(_ context.Context, date string, patch model.MatchPatch) (model.Match, error) {
	m, ok := f.matches[date]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	if patch.Venue != nil {
		m.Venue = patch.Venue
	}
	if patch.Description != nil {
		m.Description = patch.Description
	}
	f.matches[date] = m
	return m, nil
}

func (f *fakeMatchRepo) Delete(_ context.Context, date string) (model.Match, error) {
	m, ok := f.matches[date]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	delete(f.matches, date)
	return m, nil
}

func (f *fakeMatchRepo) Dates(_ context.Context) ([]string, error) {
	dates := make([]string, 0, len(f.matches))
	for date := range f.matches {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates))) // deliberately not chronological
	return dates, nil
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)

type goalKey struct{ player, date string }

type fakeGoalRepo struct {
	entries map[goalKey]model.GoalEntry
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{entries: make(map[goalKey]model.GoalEntry)}
}

func (f *fakeGoalRepo) Upsert(_ context.Context, playerName, matchDate string, goals int) (model.GoalEntry, error) {
	e := model.GoalEntry{PlayerName: playerName, MatchDate: matchDate, Goals: goals}
	f.entries[goalKey{playerName, matchDate}] = e
	return e, nil
}

func (f *fakeGoalRepo) Delete(_ context.Context, playerName, matchDate string) error {
	k := goalKey{playerName, matchDate}
	if _, ok := f.entries[k]; !ok {
		return repository.ErrNotFound
	}
	delete(f.entries, k)
	return nil
}

func (f *fakeGoalRepo) ListByPlayer(_ context.Context, playerName string) ([]model.GoalEntry, error) {
	res := make([]model.GoalEntry, 0)
	for k, e := range f.entries {
		if k.player == playerName {
			res = append(res, e)
		}
	}
	return res, nil
}

func (f *fakeGoalRepo) ListByMatch(_ context.Context, matchDate string) ([]model.GoalEntry, error) {
	res := make([]model.GoalEntry, 0)
	for k, e := range f.entries {
		if k.date == matchDate {
			res = append(res, e)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].PlayerName < res[j].PlayerName })
	return res, nil
}

var _ repository.GoalRepository = (*fakeGoalRepo)(nil)

type fakeTx struct{}

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error { return fn(ctx) }

var _ repository.TxManager = (*fakeTx)(nil)

func strPtr(s string) *string { return &s }

func playerNamed(name string) model.Player { return model.Player{Name: name} }

func matchOn(date string) model.Match { return model.Match{Date: date} }
