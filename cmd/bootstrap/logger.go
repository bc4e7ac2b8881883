package bootstrap

import (
	"log/slog"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/middleware"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
