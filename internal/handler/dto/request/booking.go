package request

import (
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"
)

// AvailabilityRequest is bound from the query string.
type AvailabilityRequest struct {
	HotelID    int32  `form:"idHotel" binding:"required,min=1"`
	RoomTypeID int32  `form:"idTipo" binding:"required,min=1"`
	StartDate  string `form:"fechaInicio" binding:"required,datetime=2006-01-02"`
	EndDate    string `form:"fechaFin" binding:"required,datetime=2006-01-02"`
}

func (r AvailabilityRequest) ToQuery() (booking.AvailabilityQuery, error) {
	start, end, err := parseRange(r.StartDate, r.EndDate)
	if err != nil {
		return booking.AvailabilityQuery{}, err
	}
	return booking.AvailabilityQuery{
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

// RatesRequest is bound from the query string. idTipo may be omitted to list
// every room type of the hotel.
type RatesRequest struct {
	HotelID       int32  `form:"idHotel" binding:"required,min=1"`
	RoomTypeID    *int32 `form:"idTipo" binding:"omitempty,min=1"`
	ReferenceDate string `form:"fechaInicio" binding:"required,datetime=2006-01-02"`
}

func (r RatesRequest) ToQuery() (booking.RateQuery, error) {
	ref, err := booking.ParseDate(r.ReferenceDate)
	if err != nil {
		return booking.RateQuery{}, err
	}
	filter := booking.AnyRoomType()
	if r.RoomTypeID != nil {
		filter = booking.ExactRoomType(*r.RoomTypeID)
	}
	return booking.RateQuery{
		HotelID:       r.HotelID,
		RoomType:      filter,
		ReferenceDate: ref,
	}, nil
}

// StayRequest is the JSON body shared by price calculation and reservation.
type StayRequest struct {
	HotelID    int32  `json:"idHotel" binding:"required,min=1"`
	RoomTypeID int32  `json:"idTipo" binding:"required,min=1"`
	StartDate  string `json:"fechaInicio" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"fechaFin" binding:"required,datetime=2006-01-02"`
	Persons    int32  `json:"numeroPersonas" binding:"required,min=1"`
	Rooms      int32  `json:"cantidadHabitaciones" binding:"required,min=1"`
}

func (r StayRequest) ToPriceRequest() (booking.PriceCalculationRequest, error) {
	start, end, err := parseRange(r.StartDate, r.EndDate)
	if err != nil {
		return booking.PriceCalculationRequest{}, err
	}
	return booking.PriceCalculationRequest{
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		StartDate:  start,
		EndDate:    end,
		Persons:    r.Persons,
		Rooms:      r.Rooms,
	}, nil
}

func (r StayRequest) ToReservationRequest() (booking.ReservationRequest, error) {
	start, end, err := parseRange(r.StartDate, r.EndDate)
	if err != nil {
		return booking.ReservationRequest{}, err
	}
	return booking.ReservationRequest{
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		StartDate:  start,
		EndDate:    end,
		Persons:    r.Persons,
		Rooms:      r.Rooms,
	}, nil
}

// equal dates are a valid range
func parseRange(startStr, endStr string) (start, end time.Time, err error) {
	start, err = booking.ParseDate(startStr)
	if err != nil {
		return start, end, err
	}
	end, err = booking.ParseDate(endStr)
	if err != nil {
		return start, end, err
	}
	if end.Before(start) {
		return start, end, errs.ErrInvalidDateRange
	}
	return start, end, nil
}
