package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/futbol-stats-service/internal/model"
	"github.com/maxviazov/futbol-stats-service/internal/repository"
)

type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

func scanMatch(row pgx.Row) (model.Match, error) {
	var out model.Match
	var date time.Time
	if err := row.Scan(&date, &out.Venue, &out.Description, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Match{}, err
	}
	out.Date = formatDay(date)
	return out, nil
}

func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO partidos (fecha, lugar, descripcion)
		 VALUES ($1::date, $2, $3)
		 RETURNING fecha, lugar, descripcion, created_at, updated_at`,
		m.Date, m.Venue, m.Description,
	)
	out, err := scanMatch(row)
	if err != nil {
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) GetByDate(ctx context.Context, date string) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT fecha, lugar, descripcion, created_at, updated_at
		 FROM partidos WHERE fecha = $1::date`, date,
	)
	out, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) Update(ctx context.Context, date string, patch model.MatchPatch) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE partidos SET
			lugar       = COALESCE($2, lugar),
			descripcion = COALESCE($3, descripcion),
			updated_at  = NOW()
		 WHERE fecha = $1::date
		 RETURNING fecha, lugar, descripcion, created_at, updated_at`,
		date, patch.Venue, patch.Description,
	)
	out, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) Delete(ctx context.Context, date string) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`DELETE FROM partidos WHERE fecha = $1::date
		 RETURNING fecha, lugar, descripcion, created_at, updated_at`,
		date,
	)
	out, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) Dates(ctx context.Context) ([]string, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT fecha FROM partidos ORDER BY fecha`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]string, 0, 16)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, formatDay(date))
	}
	return res, rows.Err()
}

var _ repository.MatchRepository = (*matchRepository)(nil)
