package shared

import (
	"context"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Read-write transaction, committed once, never retried
	Within(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithinReadOnly: Read-only transaction for stored procedure lookups
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single statement on the pool using an implicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// BookingGateway runs the reservation stored procedures on a caller supplied handle.
type BookingGateway interface {
	CheckAvailability(ctx context.Context, db db.DBTX, q booking.AvailabilityQuery) ([]booking.AvailabilityResult, error)
	ListRates(ctx context.Context, db db.DBTX, q booking.RateQuery) ([]booking.RateResult, error)
	ComputePrice(ctx context.Context, db db.DBTX, req booking.PriceCalculationRequest) (booking.PriceCalculationResult, error)
	CreateReservation(ctx context.Context, db db.DBTX, req booking.ReservationRequest) (booking.ReservationResult, error)
}
