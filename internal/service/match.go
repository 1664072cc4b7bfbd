package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maxviazov/futbol-stats-service/internal/model"
	"github.com/maxviazov/futbol-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type matchService struct {
	matches repository.MatchRepository
	goals   repository.GoalRepository
	log     zerolog.Logger
}

func NewMatchService(matches repository.MatchRepository, goals repository.GoalRepository, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{matches: matches, goals: goals, log: l}
}

// validateDay normalizes and checks a date field, appending to ferrs on failure.
func validateDay(date, field string, ferrs []FieldError) (string, []FieldError) {
	date = strings.TrimSpace(date)
	if date == "" {
		return date, append(ferrs, FieldError{Field: field, Message: "must not be empty"})
	}
	if _, ok := parseDay(date); !ok {
		return date, append(ferrs, FieldError{Field: field, Message: "must be a YYYY-MM-DD date"})
	}
	return date, ferrs
}

func (s *matchService) CreateMatch(ctx context.Context, date string, venue, description *string) (model.Match, error) {
	start := time.Now()

	var ferrs []FieldError
	date, ferrs = validateDay(date, "fecha", ferrs)
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed")
		return model.Match{}, err
	}

	out, err := s.matches.Create(ctx, model.Match{Date: date, Venue: venue, Description: description})
	if err != nil {
		s.log.Error().Err(err).Str("fecha", date).Msg("create match failed")
		return model.Match{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("fecha", out.Date).Msg("match created")
	return out, nil
}

func (s *matchService) EditMatch(ctx context.Context, date string, patch model.MatchPatch) (model.Match, error) {
	var ferrs []FieldError
	date, ferrs = validateDay(date, "fecha", ferrs)
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.Match{}, err
	}

	out, err := s.matches.Update(ctx, date, patch)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Str("fecha", date).Msg("edit match failed")
		}
		return model.Match{}, err
	}
	s.log.Info().Str("fecha", date).Msg("match edited")
	return out, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, date string) (model.Match, error) {
	var ferrs []FieldError
	date, ferrs = validateDay(date, "fecha", ferrs)
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.Match{}, err
	}
	out, err := s.matches.Delete(ctx, date)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.log.Warn().Str("fecha", date).Msg("delete of unknown match")
		case errors.Is(err, repository.ErrConflict):
			s.log.Warn().Str("fecha", date).Msg("delete blocked by recorded goals")
		default:
			s.log.Error().Err(err).Str("fecha", date).Msg("delete match failed")
		}
		return model.Match{}, err
	}
	s.log.Info().Str("fecha", date).Msg("match deleted")
	return out, nil
}
