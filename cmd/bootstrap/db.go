package bootstrap

import (
	"context"
	"log/slog"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/db"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB opens the pool eagerly so a bad DSN fails startup, and closes it
// when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		logger.Info("closing database pool",
			"acquired_conns", stat.AcquiredConns(),
			"total_conns", stat.TotalConns(),
			"acquire_count", stat.AcquireCount())
		cleanup()
	}))

	return pool, nil
}
