package commands

import (
	"context"
	"log/slog"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/db"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/shared"
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req booking.ReservationRequest) (booking.ReservationResult, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway shared.BookingGateway
	logger  *slog.Logger
}

func NewReservationCommands(uow shared.UnitOfWork, gateway shared.BookingGateway, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, gateway: gateway, logger: logger}
}

// CreateReservation runs crear_reserva in one read-write transaction.
// A store-reported failure (exito=false) is a normal result, not an error.
func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, req booking.ReservationRequest) (booking.ReservationResult, error) {
	r.logger.Info("creating reservation",
		"hotel_id", req.HotelID,
		"room_type_id", req.RoomTypeID,
		"start_date", booking.FormatDate(req.StartDate),
		"end_date", booking.FormatDate(req.EndDate),
		"persons", req.Persons,
		"rooms", req.Rooms)

	var out booking.ReservationResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = r.gateway.CreateReservation(ctx, tx, req)
		return err
	})
	if err != nil {
		return booking.ReservationResult{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if out.Succeeded() {
		r.logger.Info("reservation created", "reservation_id", orNil(out.ReservationID), "total", orNil(out.Total))
	} else {
		r.logger.Warn("reservation rejected", "message", orNil(out.Message))
	}
	return out, nil
}

func orNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
