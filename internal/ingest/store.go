package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rejdeboer/tagpro-telemetry/internal/db"
)

// PostgresStore persists matches and their player stats in one transaction.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) SaveMatch(ctx context.Context, match db.CreateMatchParams, players []db.CreatePlayerStatsParams) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	q := db.New(s.pool).WithTx(tx)
	if _, err = q.CreateMatch(ctx, match); err != nil {
		return fmt.Errorf("creating match: %w", err)
	}
	for _, p := range players {
		if err = q.CreatePlayerStats(ctx, p); err != nil {
			return fmt.Errorf("creating stats of player %d: %w", p.PlayerIndex, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) GetMatch(ctx context.Context, id uuid.UUID) (db.Match, []db.PlayerStat, error) {
	q := db.New(s.pool)

	match, err := q.GetMatchByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Match{}, nil, ErrNotFound
	}
	if err != nil {
		return db.Match{}, nil, err
	}

	players, err := q.ListPlayerStatsByMatch(ctx, id)
	if err != nil {
		return db.Match{}, nil, err
	}
	return match, players, nil
}
