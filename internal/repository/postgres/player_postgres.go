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

type playerRepository struct{ pool *pgxpool.Pool }

func NewPlayerRepository(pool *pgxpool.Pool) repository.PlayerRepository {
	return &playerRepository{pool: pool}
}

func scanPlayer(row pgx.Row) (model.Player, error) {
	var out model.Player
	var birth *time.Time
	if err := row.Scan(&out.Name, &birth, &out.Trait, &out.FunFact, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Player{}, err
	}
	out.BirthDate = formatDayPtr(birth)
	return out, nil
}

func (r *playerRepository) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO jugadores (nombre, nacimiento, caracteristica, curiosidad)
		 VALUES ($1, $2::date, $3, $4)
		 RETURNING nombre, nacimiento, caracteristica, curiosidad, created_at, updated_at`,
		p.Name, p.BirthDate, p.Trait, p.FunFact,
	)
	out, err := scanPlayer(row)
	if err != nil {
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) GetByName(ctx context.Context, name string) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT nombre, nacimiento, caracteristica, curiosidad, created_at, updated_at
		 FROM jugadores WHERE nombre = $1`, name,
	)
	out, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) Update(ctx context.Context, name string, patch model.PlayerPatch) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	// Nil patch fields leave the stored value untouched.
	row := exec.QueryRow(ctx,
		`UPDATE jugadores SET
			nacimiento     = COALESCE($2::date, nacimiento),
			caracteristica = COALESCE($3, caracteristica),
			curiosidad     = COALESCE($4, curiosidad),
			updated_at     = NOW()
		 WHERE nombre = $1
		 RETURNING nombre, nacimiento, caracteristica, curiosidad, created_at, updated_at`,
		name, patch.BirthDate, patch.Trait, patch.FunFact,
	)
	out, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) Delete(ctx context.Context, name string) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`DELETE FROM jugadores WHERE nombre = $1
		 RETURNING nombre, nacimiento, caracteristica, curiosidad, created_at, updated_at`,
		name,
	)
	out, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) Names(ctx context.Context) ([]string, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT nombre FROM jugadores ORDER BY nombre`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, name)
	}
	return res, rows.Err()
}

var _ repository.PlayerRepository = (*playerRepository)(nil)
