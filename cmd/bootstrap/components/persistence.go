package components

import (
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/gateway"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/uow"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Stored procedure gateway
		fx.Annotate(
			gateway.NewGateway,
			fx.As(new(shared.BookingGateway)),
		),
	),
)
