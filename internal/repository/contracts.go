package repository

import (
	"context"

	"github.com/maxviazov/futbol-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// PlayerRepository declares persistence operations for players, keyed by name.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	GetByName(ctx context.Context, name string) (model.Player, error)
	// Update patches the mutable fields; ErrNotFound when no row matched.
	Update(ctx context.Context, name string, patch model.PlayerPatch) (model.Player, error)
	// Delete removes the player and returns the deleted record.
	Delete(ctx context.Context, name string) (model.Player, error)
	// Names enumerates every known player name without loading full rows.
	Names(ctx context.Context) ([]string, error)
}

// MatchRepository declares persistence operations for matches, keyed by date.
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByDate(ctx context.Context, date string) (model.Match, error)
	Update(ctx context.Context, date string, patch model.MatchPatch) (model.Match, error)
	Delete(ctx context.Context, date string) (model.Match, error)
	// Dates enumerates every known match date, format YYYY-MM-DD.
	Dates(ctx context.Context) ([]string, error)
}

// GoalRepository declares operations on the (player, match) goal association.
type GoalRepository interface {
	// Upsert records goals for the pair, overwriting any existing count.
	// The row is created on first use, so the association itself is idempotent.
	Upsert(ctx context.Context, playerName, matchDate string, goals int) (model.GoalEntry, error)
	// Delete removes the association; ErrNotFound when the pair has no entry.
	Delete(ctx context.Context, playerName, matchDate string) error
	ListByPlayer(ctx context.Context, playerName string) ([]model.GoalEntry, error)
	ListByMatch(ctx context.Context, matchDate string) ([]model.GoalEntry, error)
}
