package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/futbol-stats-service/internal/model"
	"github.com/maxviazov/futbol-stats-service/internal/repository"
)

type goalRepository struct{ pool *pgxpool.Pool }

func NewGoalRepository(pool *pgxpool.Pool) repository.GoalRepository {
	return &goalRepository{pool: pool}
}

func scanGoalEntry(row pgx.Row) (model.GoalEntry, error) {
	var out model.GoalEntry
	var date time.Time
	if err := row.Scan(&out.PlayerName, &date, &out.Goals, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.GoalEntry{}, err
	}
	out.MatchDate = formatDay(date)
	return out, nil
}

func (r *goalRepository) Upsert(ctx context.Context, playerName, matchDate string, goals int) (model.GoalEntry, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.GoalEntry{}, err
	}
	exec := getQ(ctx, r.pool)
	// The composite PK makes the association idempotent; re-recording a pair
	// overwrites the count instead of inserting a duplicate.
	row := exec.QueryRow(ctx,
		`INSERT INTO goles_x_partidos (jugador_nombre, partido_fecha, goles)
		 VALUES ($1, $2::date, $3)
		 ON CONFLICT (jugador_nombre, partido_fecha)
		 DO UPDATE SET goles = EXCLUDED.goles, updated_at = NOW()
		 RETURNING jugador_nombre, partido_fecha, goles, created_at, updated_at`,
		playerName, matchDate, goals,
	)
	out, err := scanGoalEntry(row)
	if err != nil {
		return model.GoalEntry{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *goalRepository) Delete(ctx context.Context, playerName, matchDate string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx,
		`DELETE FROM goles_x_partidos WHERE jugador_nombre = $1 AND partido_fecha = $2::date`,
		playerName, matchDate,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *goalRepository) ListByPlayer(ctx context.Context, playerName string) ([]model.GoalEntry, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT jugador_nombre, partido_fecha, goles, created_at, updated_at
		 FROM goles_x_partidos WHERE jugador_nombre = $1
		 ORDER BY partido_fecha`, playerName,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	return collectGoalEntries(rows)
}

func (r *goalRepository) ListByMatch(ctx context.Context, matchDate string) ([]model.GoalEntry, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	// Name order keeps match rosters deterministic across requests.
	rows, err := exec.Query(ctx,
		`SELECT jugador_nombre, partido_fecha, goles, created_at, updated_at
		 FROM goles_x_partidos WHERE partido_fecha = $1::date
		 ORDER BY jugador_nombre`, matchDate,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	return collectGoalEntries(rows)
}

func collectGoalEntries(rows pgx.Rows) ([]model.GoalEntry, error) {
	res := make([]model.GoalEntry, 0, 8)
	for rows.Next() {
		var it model.GoalEntry
		var date time.Time
		if err := rows.Scan(&it.PlayerName, &date, &it.Goals, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		it.MatchDate = formatDay(date)
		res = append(res, it)
	}
	return res, rows.Err()
}

var _ repository.GoalRepository = (*goalRepository)(nil)
