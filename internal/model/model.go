// Package model contains domain entities and read models used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// Dates cross the API as plain YYYY-MM-DD strings; parsing and ordering
// live in the service layer.

// Player represents a tracked amateur footballer, keyed by name.
type Player struct {
	Name      string    `json:"nombre"`
	BirthDate *string   `json:"nacimiento"`
	Trait     *string   `json:"caracteristica"`
	FunFact   *string   `json:"curiosidad"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerPatch carries the mutable fields of a player. The name is the
// identity and never changes.
type PlayerPatch struct {
	BirthDate *string `json:"nacimiento"`
	Trait     *string `json:"caracteristica"`
	FunFact   *string `json:"curiosidad"`
}

// Match represents a tracked game, keyed by the day it was played.
type Match struct {
	Date        string    `json:"fecha"`
	Venue       *string   `json:"lugar"`
	Description *string   `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MatchPatch carries the mutable fields of a match.
type MatchPatch struct {
	Venue       *string `json:"lugar"`
	Description *string `json:"descripcion"`
}

// GoalEntry links a player to a match with the goals scored there.
// At most one row exists per (player, match) pair; re-recording overwrites.
type GoalEntry struct {
	PlayerName string    `json:"jugador"`
	MatchDate  string    `json:"fecha"`
	Goals      int       `json:"goles"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MatchDetail is one line of a player's per-match breakdown.
type MatchDetail struct {
	Date  string `json:"fecha"`
	Goals int    `json:"goles"`
}

// PlayerSummary is the derived read model for a single player: the entity
// fields plus totals computed from goal entries. Totals default to 0 and
// MatchDetails to an empty slice for players who never scored.
type PlayerSummary struct {
	Name         string        `json:"nombre"`
	BirthDate    *string       `json:"nacimiento"`
	Trait        *string       `json:"caracteristica"`
	FunFact      *string       `json:"curiosidad"`
	TotalGoals   int           `json:"goles"`
	MatchCount   int           `json:"partidos"`
	MatchDetails []MatchDetail `json:"detallePartidos"`
	// Rank is 1-based and only set on leaderboard listings.
	Rank int `json:"puesto,omitempty"`
}

// MatchScorer is one player's line in a match roster.
type MatchScorer struct {
	PlayerName string `json:"jugador"`
	Goals      int    `json:"goles"`
}

// MatchSummary is the derived read model for a single match.
type MatchSummary struct {
	Date        string        `json:"fecha"`
	Venue       *string       `json:"lugar"`
	Description *string       `json:"descripcion"`
	Scorers     []MatchScorer `json:"jugadores"`
}
