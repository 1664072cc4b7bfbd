// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/futbol-stats-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PlayerService defines player-oriented use cases, including the derived
// summary reads.
type PlayerService interface {
	CreatePlayer(ctx context.Context, name string, birthDate, trait, funFact *string) (model.Player, error)
	EditPlayer(ctx context.Context, name string, patch model.PlayerPatch) (model.Player, error)
	DeletePlayer(ctx context.Context, name string) (model.Player, error)
	GetPlayerSummary(ctx context.Context, name string) (model.PlayerSummary, error)
	// ListPlayerSummaries returns every player's summary ranked by total
	// goals descending; equal totals rank the player with fewer matches first.
	ListPlayerSummaries(ctx context.Context) ([]model.PlayerSummary, error)
}

// MatchService defines match-oriented use cases.
type MatchService interface {
	CreateMatch(ctx context.Context, date string, venue, description *string) (model.Match, error)
	EditMatch(ctx context.Context, date string, patch model.MatchPatch) (model.Match, error)
	DeleteMatch(ctx context.Context, date string) (model.Match, error)
	GetMatchSummary(ctx context.Context, date string) (model.MatchSummary, error)
	// ListMatchSummaries returns every match summary in chronological order.
	ListMatchSummaries(ctx context.Context) ([]model.MatchSummary, error)
}

// GoalService records and removes goals for a (player, match) pair.
type GoalService interface {
	// RecordGoals sets the goal count for the pair, overwriting any
	// previously recorded value.
	RecordGoals(ctx context.Context, playerName, matchDate string, goals int) (model.GoalEntry, error)
	RemoveGoals(ctx context.Context, playerName, matchDate string) error
}

// TokenService issues and verifies the bearer tokens guarding write endpoints.
type TokenService interface {
	// Login exchanges the shared password for a signed, time-limited token.
	Login(ctx context.Context, password string) (string, error)
	Verify(token string) error
}
