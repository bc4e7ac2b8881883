package components

import (
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/commands"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)
