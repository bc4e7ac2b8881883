//go:build unit || e2e

package builder

import (
	"net/url"
	"strconv"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	reqdto "github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/dto/request"
)

// StayBuilder defaults to two guests in one Suite over two high-season nights
// at the seeded hotel.
type StayBuilder struct {
	HotelID    int32
	RoomTypeID int32
	StartDate  string
	EndDate    string
	Persons    int32
	Rooms      int32
}

func NewStayBuilder() *StayBuilder {
	return &StayBuilder{
		HotelID:    1,
		RoomTypeID: 2,
		StartDate:  "2026-12-20",
		EndDate:    "2026-12-22",
		Persons:    2,
		Rooms:      1,
	}
}

func (b *StayBuilder) With(mutate func(*StayBuilder)) *StayBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *StayBuilder) BuildRequestDTO() reqdto.StayRequest {
	return reqdto.StayRequest{
		HotelID:    b.HotelID,
		RoomTypeID: b.RoomTypeID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Persons:    b.Persons,
		Rooms:      b.Rooms,
	}
}

func (b *StayBuilder) BuildPriceRequest() booking.PriceCalculationRequest {
	start, _ := booking.ParseDate(b.StartDate)
	end, _ := booking.ParseDate(b.EndDate)
	return booking.PriceCalculationRequest{
		HotelID:    b.HotelID,
		RoomTypeID: b.RoomTypeID,
		StartDate:  start,
		EndDate:    end,
		Persons:    b.Persons,
		Rooms:      b.Rooms,
	}
}

func (b *StayBuilder) BuildReservationRequest() booking.ReservationRequest {
	start, _ := booking.ParseDate(b.StartDate)
	end, _ := booking.ParseDate(b.EndDate)
	return booking.ReservationRequest{
		HotelID:    b.HotelID,
		RoomTypeID: b.RoomTypeID,
		StartDate:  start,
		EndDate:    end,
		Persons:    b.Persons,
		Rooms:      b.Rooms,
	}
}

func (b *StayBuilder) BuildAvailabilityQuery() booking.AvailabilityQuery {
	start, _ := booking.ParseDate(b.StartDate)
	end, _ := booking.ParseDate(b.EndDate)
	return booking.AvailabilityQuery{
		HotelID:    b.HotelID,
		RoomTypeID: b.RoomTypeID,
		StartDate:  start,
		EndDate:    end,
	}
}

// AvailabilityParams is the query string of GET /disponibilidad.
func (b *StayBuilder) AvailabilityParams() url.Values {
	return url.Values{
		"idHotel":     {strconv.Itoa(int(b.HotelID))},
		"idTipo":      {strconv.Itoa(int(b.RoomTypeID))},
		"fechaInicio": {b.StartDate},
		"fechaFin":    {b.EndDate},
	}
}

// RatesParams is the query string of GET /tarifas for the stay's start date.
func (b *StayBuilder) RatesParams(withRoomType bool) url.Values {
	v := url.Values{
		"idHotel":     {strconv.Itoa(int(b.HotelID))},
		"fechaInicio": {b.StartDate},
	}
	if withRoomType {
		v.Set("idTipo", strconv.Itoa(int(b.RoomTypeID)))
	}
	return v
}
