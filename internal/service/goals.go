package service

import (
	"context"
	"errors"
	"strings"

	"github.com/maxviazov/futbol-stats-service/internal/model"
	"github.com/maxviazov/futbol-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type goalService struct {
	goals   repository.GoalRepository
	players repository.PlayerRepository
	matches repository.MatchRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewGoalService(goals repository.GoalRepository, players repository.PlayerRepository, matches repository.MatchRepository, tx repository.TxManager, logger zerolog.Logger) GoalService {
	l := logger.With().Str("module", "service").Str("component", "goals").Logger()
	return &goalService{goals: goals, players: players, matches: matches, tx: tx, log: l}
}

// resolvePair validates inputs and checks both referenced entities exist.
// Missing entities are reported as field errors so the caller learns which
// side of the pair is wrong.
func (s *goalService) resolvePair(ctx context.Context, playerName, matchDate string) (string, string, error) {
	playerName = strings.TrimSpace(playerName)
	var ferrs []FieldError
	if playerName == "" {
		ferrs = append(ferrs, FieldError{Field: "nombre", Message: "must not be empty"})
	}
	matchDate, ferrs = validateDay(matchDate, "fecha", ferrs)
	if err := NewInvalidInputError(ferrs); err != nil {
		return "", "", err
	}

	var existenceErrs []FieldError
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.players.GetByName(ctx, playerName); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				existenceErrs = append(existenceErrs, FieldError{Field: "nombre", Message: "player does not exist"})
				return nil // continue checks
			}
			return err
		}
		if _, err := s.matches.GetByDate(ctx, matchDate); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				existenceErrs = append(existenceErrs, FieldError{Field: "fecha", Message: "match does not exist"})
				return nil
			}
			return err
		}
		return nil
	}); err != nil {
		return "", "", err
	}
	if len(existenceErrs) > 0 {
		s.log.Warn().Interface("field_errors", existenceErrs).Str("nombre", playerName).Str("fecha", matchDate).Msg("goal operation against unknown entity")
		return "", "", repository.ErrNotFound
	}
	return playerName, matchDate, nil
}

func (s *goalService) RecordGoals(ctx context.Context, playerName, matchDate string, goals int) (model.GoalEntry, error) {
	if goals < 0 {
		return model.GoalEntry{}, NewInvalidInputError([]FieldError{{Field: "goles", Message: "must be >= 0"}})
	}
	playerName, matchDate, err := s.resolvePair(ctx, playerName, matchDate)
	if err != nil {
		return model.GoalEntry{}, err
	}

	// Last write wins: recording again for the same pair overwrites the count.
	out, err := s.goals.Upsert(ctx, playerName, matchDate, goals)
	if err != nil {
		s.log.Error().Err(err).Str("nombre", playerName).Str("fecha", matchDate).Msg("record goals failed")
		return model.GoalEntry{}, err
	}
	s.log.Info().Str("nombre", playerName).Str("fecha", matchDate).Int("goles", goals).Msg("goals recorded")
	return out, nil
}

func (s *goalService) RemoveGoals(ctx context.Context, playerName, matchDate string) error {
	playerName, matchDate, err := s.resolvePair(ctx, playerName, matchDate)
	if err != nil {
		return err
	}

	if err := s.goals.Delete(ctx, playerName, matchDate); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn().Str("nombre", playerName).Str("fecha", matchDate).Msg("no goal entry to remove")
		} else {
			s.log.Error().Err(err).Str("nombre", playerName).Str("fecha", matchDate).Msg("remove goals failed")
		}
		return err
	}
	s.log.Info().Str("nombre", playerName).Str("fecha", matchDate).Msg("goals removed")
	return nil
}
