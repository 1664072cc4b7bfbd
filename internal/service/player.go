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

const maxNameLen = 100

type playerService struct {
	players repository.PlayerRepository
	goals   repository.GoalRepository
	log     zerolog.Logger
}

func NewPlayerService(players repository.PlayerRepository, goals repository.GoalRepository, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{players: players, goals: goals, log: l}
}

func (s *playerService) CreatePlayer(ctx context.Context, name string, birthDate, trait, funFact *string) (model.Player, error) {
	start := time.Now()

	// Normalize early so validation and persistence see canonical values.
	name = strings.TrimSpace(name)

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "nombre", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln > maxNameLen {
		ferrs = append(ferrs, FieldError{Field: "nombre", Message: "length must be <= 100"})
	}
	if birthDate != nil {
		if _, ok := parseDay(*birthDate); !ok {
			ferrs = append(ferrs, FieldError{Field: "nacimiento", Message: "must be a YYYY-MM-DD date"})
		}
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("player validation failed")
		return model.Player{}, err
	}

	out, err := s.players.Create(ctx, model.Player{Name: name, BirthDate: birthDate, Trait: trait, FunFact: funFact})
	if err != nil {
		s.log.Error().Err(err).Str("nombre", name).Msg("create player failed")
		return model.Player{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("nombre", out.Name).Msg("player created")
	return out, nil
}

func (s *playerService) EditPlayer(ctx context.Context, name string, patch model.PlayerPatch) (model.Player, error) {
	name = strings.TrimSpace(name)
	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "nombre", Message: "must not be empty"})
	}
	if patch.BirthDate != nil {
		if _, ok := parseDay(*patch.BirthDate); !ok {
			ferrs = append(ferrs, FieldError{Field: "nacimiento", Message: "must be a YYYY-MM-DD date"})
		}
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.Player{}, err
	}

	out, err := s.players.Update(ctx, name, patch)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Str("nombre", name).Msg("edit player failed")
		}
		return model.Player{}, err
	}
	s.log.Info().Str("nombre", name).Msg("player edited")
	return out, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, name string) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, NewInvalidInputError([]FieldError{{Field: "nombre", Message: "must not be empty"}})
	}
	out, err := s.players.Delete(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.log.Warn().Str("nombre", name).Msg("delete of unknown player")
		case errors.Is(err, repository.ErrConflict):
			// Recorded goals block deletion until they are removed.
			s.log.Warn().Str("nombre", name).Msg("delete blocked by recorded goals")
		default:
			s.log.Error().Err(err).Str("nombre", name).Msg("delete player failed")
		}
		return model.Player{}, err
	}
	s.log.Info().Str("nombre", name).Msg("player deleted")
	return out, nil
}
