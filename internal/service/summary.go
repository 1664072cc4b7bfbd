package service

import (
	"context"
	"sort"

	"github.com/maxviazov/futbol-stats-service/internal/model"
)

// Summaries are stateless aggregates over freshly fetched rows; nothing here
// caches between calls.

func (s *playerService) GetPlayerSummary(ctx context.Context, name string) (model.PlayerSummary, error) {
	if name == "" {
		return model.PlayerSummary{}, NewInvalidInputError([]FieldError{{Field: "nombre", Message: "must not be empty"}})
	}
	player, err := s.players.GetByName(ctx, name)
	if err != nil {
		return model.PlayerSummary{}, err
	}

	entries, err := s.goals.ListByPlayer(ctx, player.Name)
	if err != nil {
		s.log.Error().Err(err).Str("nombre", player.Name).Msg("list goal entries failed")
		return model.PlayerSummary{}, err
	}

	summary := model.PlayerSummary{
		Name:         player.Name,
		BirthDate:    player.BirthDate,
		Trait:        player.Trait,
		FunFact:      player.FunFact,
		MatchDetails: make([]model.MatchDetail, 0, len(entries)),
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return dayBefore(entries[i].MatchDate, entries[j].MatchDate)
	})
	for _, e := range entries {
		summary.TotalGoals += e.Goals
		summary.MatchDetails = append(summary.MatchDetails, model.MatchDetail{Date: e.MatchDate, Goals: e.Goals})
	}
	summary.MatchCount = len(entries)
	return summary, nil
}

func (s *playerService) ListPlayerSummaries(ctx context.Context) ([]model.PlayerSummary, error) {
	names, err := s.players.Names(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("enumerate player names failed")
		return nil, err
	}

	summaries := make([]model.PlayerSummary, 0, len(names))
	for _, name := range names {
		summary, err := s.GetPlayerSummary(ctx, name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	// Goals descending; on equal goals the player who needed fewer matches
	// ranks higher.
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].TotalGoals != summaries[j].TotalGoals {
			return summaries[i].TotalGoals > summaries[j].TotalGoals
		}
		return summaries[i].MatchCount < summaries[j].MatchCount
	})
	for i := range summaries {
		summaries[i].Rank = i + 1
	}
	return summaries, nil
}

func (s *matchService) GetMatchSummary(ctx context.Context, date string) (model.MatchSummary, error) {
	var ferrs []FieldError
	date, ferrs = validateDay(date, "fecha", ferrs)
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.MatchSummary{}, err
	}
	match, err := s.matches.GetByDate(ctx, date)
	if err != nil {
		return model.MatchSummary{}, err
	}

	entries, err := s.goals.ListByMatch(ctx, match.Date)
	if err != nil {
		s.log.Error().Err(err).Str("fecha", match.Date).Msg("list goal entries failed")
		return model.MatchSummary{}, err
	}

	summary := model.MatchSummary{
		Date:        match.Date,
		Venue:       match.Venue,
		Description: match.Description,
		Scorers:     make([]model.MatchScorer, 0, len(entries)),
	}
	for _, e := range entries {
		summary.Scorers = append(summary.Scorers, model.MatchScorer{PlayerName: e.PlayerName, Goals: e.Goals})
	}
	return summary, nil
}

func (s *matchService) ListMatchSummaries(ctx context.Context) ([]model.MatchSummary, error) {
	dates, err := s.matches.Dates(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("enumerate match dates failed")
		return nil, err
	}

	summaries := make([]model.MatchSummary, 0, len(dates))
	for _, date := range dates {
		summary, err := s.GetMatchSummary(ctx, date)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return dayBefore(summaries[i].Date, summaries[j].Date)
	})
	return summaries, nil
}
