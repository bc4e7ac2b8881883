package components

import (
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/api"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		func(pool *pgxpool.Pool) handler.Pinger { return pool },
	),
	fx.Invoke(handler.NewRouter),
)
