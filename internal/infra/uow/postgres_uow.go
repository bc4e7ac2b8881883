package uow

import (
	"context"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/db"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
	}
}

// Single attempt at ReadCommitted; errors are returned without retry.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return shared.RunInTx(ctx, u.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return shared.RunInTx(ctx, u.pool, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}
