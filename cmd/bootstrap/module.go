package bootstrap

import (
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/cmd/bootstrap/components"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/config"

	"go.uber.org/fx"
)

// Module wires the HTTP service. cfg decides which optional integrations load.
func Module(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		LoggerModule,
		TelemetryModule,
		DBModule,
		RedisModule(cfg),
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}
