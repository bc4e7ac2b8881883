package queries

import (
	"context"
	"log/slog"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/db"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/shared"
)

type BookingQueries interface {
	CheckAvailability(ctx context.Context, q booking.AvailabilityQuery) ([]booking.AvailabilityResult, error)
	ListRates(ctx context.Context, q booking.RateQuery) ([]booking.RateResult, error)
	ComputePrice(ctx context.Context, req booking.PriceCalculationRequest) (booking.PriceCalculationResult, error)
}

type bookingQueriesImpl struct {
	uow     shared.UnitOfWork
	gateway shared.BookingGateway
	logger  *slog.Logger
}

func NewBookingQueries(uow shared.UnitOfWork, gateway shared.BookingGateway, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{uow: uow, gateway: gateway, logger: logger}
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, in booking.AvailabilityQuery) ([]booking.AvailabilityResult, error) {
	q.logger.Info("checking availability",
		"hotel_id", in.HotelID,
		"room_type_id", in.RoomTypeID,
		"start_date", booking.FormatDate(in.StartDate),
		"end_date", booking.FormatDate(in.EndDate))

	var out []booking.AvailabilityResult
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = q.gateway.CheckAvailability(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return out, nil
}

func (q *bookingQueriesImpl) ListRates(ctx context.Context, in booking.RateQuery) ([]booking.RateResult, error) {
	attrs := []any{
		"hotel_id", in.HotelID,
		"reference_date", booking.FormatDate(in.ReferenceDate),
	}
	if id, ok := in.RoomType.Exactly(); ok {
		attrs = append(attrs, "room_type_id", id)
	}
	q.logger.Info("listing rates", attrs...)

	var out []booking.RateResult
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = q.gateway.ListRates(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return out, nil
}

func (q *bookingQueriesImpl) ComputePrice(ctx context.Context, in booking.PriceCalculationRequest) (booking.PriceCalculationResult, error) {
	q.logger.Info("computing price",
		"hotel_id", in.HotelID,
		"room_type_id", in.RoomTypeID,
		"start_date", booking.FormatDate(in.StartDate),
		"end_date", booking.FormatDate(in.EndDate),
		"persons", in.Persons,
		"rooms", in.Rooms)

	var out booking.PriceCalculationResult
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = q.gateway.ComputePrice(ctx, tx, in)
		return err
	})
	if err != nil {
		return booking.PriceCalculationResult{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !out.Priced() {
		q.logger.Info("no rate applies to the requested stay", "hotel_id", in.HotelID, "room_type_id", in.RoomTypeID)
	}
	return out, nil
}
