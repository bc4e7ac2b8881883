package gateway

import (
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
)

// Call is one parameterized store invocation. Args are positional ($1..$n).
type Call struct {
	Name string
	SQL  string
	Args []any
}

const (
	procAvailability = "verificar_disponibilidad_pool"
	procRates        = "consultar_tarifas"
	procPrice        = "calcular_precio_reserva"
	procReservation  = "crear_reserva"
)

const (
	sqlAvailability = `SELECT * FROM verificar_disponibilidad_pool($1, $2, $3::date, $4::date)`
	sqlRates        = `SELECT * FROM consultar_tarifas($1, $2, $3::date)`
	sqlPrice        = `SELECT precio_total, precio_por_noche, numero_noches, temporada, desglose::text
FROM calcular_precio_reserva($1, $2, $3::date, $4::date, $5, $6)`
	sqlReservation = `SELECT * FROM crear_reserva($1, $2, $3::date, $4::date, $5, $6)`
)

// AvailabilityCall binds (hotel, roomType, start, end).
func AvailabilityCall(q booking.AvailabilityQuery) Call {
	return Call{
		Name: procAvailability,
		SQL:  sqlAvailability,
		Args: []any{
			q.HotelID,
			q.RoomTypeID,
			booking.FormatDate(q.StartDate),
			booking.FormatDate(q.EndDate),
		},
	}
}

// RatesCall binds (hotel, roomType or NULL, referenceDate).
func RatesCall(q booking.RateQuery) Call {
	var roomType any
	if id, ok := q.RoomType.Exactly(); ok {
		roomType = id
	}
	return Call{
		Name: procRates,
		SQL:  sqlRates,
		Args: []any{
			q.HotelID,
			roomType,
			booking.FormatDate(q.ReferenceDate),
		},
	}
}

// PriceCall binds (hotel, roomType, start, end, rooms, persons).
// Rooms come before persons here, unlike ReservationCall.
func PriceCall(r booking.PriceCalculationRequest) Call {
	return Call{
		Name: procPrice,
		SQL:  sqlPrice,
		Args: []any{
			r.HotelID,
			r.RoomTypeID,
			booking.FormatDate(r.StartDate),
			booking.FormatDate(r.EndDate),
			r.Rooms,
			r.Persons,
		},
	}
}

// ReservationCall binds (hotel, roomType, start, end, persons, rooms).
func ReservationCall(r booking.ReservationRequest) Call {
	return Call{
		Name: procReservation,
		SQL:  sqlReservation,
		Args: []any{
			r.HotelID,
			r.RoomTypeID,
			booking.FormatDate(r.StartDate),
			booking.FormatDate(r.EndDate),
			r.Persons,
			r.Rooms,
		},
	}
}
