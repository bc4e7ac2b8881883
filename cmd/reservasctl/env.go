package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/middleware"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/db"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/gateway"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/uow"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/config"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/commands"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// env is the wiring shared by every subcommand.
type env struct {
	pool    *pgxpool.Pool
	logger  *slog.Logger
	cleanup func()
}

func newEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &env{pool: pool, logger: logger, cleanup: cleanup}, nil
}

func (e *env) Close() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// metrics are not exported from the CLI, so the gateway gets none
func (e *env) queries() queries.BookingQueries {
	return queries.NewBookingQueries(uow.NewPostgresUoW(e.pool), gateway.NewGateway(nil), e.logger)
}

func (e *env) commands() commands.ReservationCommands {
	return commands.NewReservationCommands(uow.NewPostgresUoW(e.pool), gateway.NewGateway(nil), e.logger)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
