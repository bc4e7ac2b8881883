package gateway

import (
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/rowmap"
)

const (
	colRoomType       = "room_type_name"
	colTotalCount     = "total_count"
	colAvailableCount = "available_count"
	colMaxOccupancy   = "max_occupancy"

	colRateID      = "rate_id"
	colHotelName   = "hotel_name"
	colSeasonName  = "season_name"
	colBaseNightly = "base_nightly_price"
	colExtraPerson = "extra_person_price"

	colTotal     = "precio_total"
	colPerNight  = "precio_por_noche"
	colNights    = "numero_noches"
	colSeason    = "temporada"
	colBreakdown = "desglose"

	colReservationID = "id_reserva"
	colSuccess       = "exito"
	colMessage       = "mensaje"
	colComputedTotal = "total_calculado"
)

var availabilitySchema = rowmap.Schema{
	{Name: colRoomType, Kind: rowmap.Text, Null: rowmap.Default(booking.UnknownRoomType)},
	{Name: colTotalCount, Kind: rowmap.Int, Null: rowmap.Default(int32(0))},
	{Name: colAvailableCount, Kind: rowmap.Int, Null: rowmap.Default(int32(0))},
	{Name: colMaxOccupancy, Kind: rowmap.Int, Null: rowmap.Default(int32(0))},
}

var rateSchema = rowmap.Schema{
	{Name: colRateID, Kind: rowmap.Int},
	{Name: colHotelName, Kind: rowmap.Text},
	{Name: colRoomType, Kind: rowmap.Text},
	{Name: colSeasonName, Kind: rowmap.Text},
	{Name: colBaseNightly, Kind: rowmap.Decimal},
	{Name: colExtraPerson, Kind: rowmap.Decimal},
}

var priceSchema = rowmap.Schema{
	{Name: colTotal, Kind: rowmap.Decimal},
	{Name: colPerNight, Kind: rowmap.Decimal},
	{Name: colNights, Kind: rowmap.Int},
	{Name: colSeason, Kind: rowmap.Text},
	{Name: colBreakdown, Kind: rowmap.Text},
}

var reservationSchema = rowmap.Schema{
	{Name: colReservationID, Kind: rowmap.Int},
	{Name: colSuccess, Kind: rowmap.Bool},
	{Name: colMessage, Kind: rowmap.Text},
	{Name: colComputedTotal, Kind: rowmap.Decimal},
}

func init() {
	for _, s := range []rowmap.Schema{availabilitySchema, rateSchema, priceSchema, reservationSchema} {
		if err := s.Validate(); err != nil {
			panic("gateway: invalid schema: " + err.Error())
		}
	}
}

func toAvailability(r rowmap.Record) booking.AvailabilityResult {
	return booking.AvailabilityResult{
		RoomType:       *r.Text(colRoomType),
		TotalRooms:     *r.Int(colTotalCount),
		AvailableRooms: *r.Int(colAvailableCount),
		MaxOccupancy:   *r.Int(colMaxOccupancy),
	}
}

func toRate(r rowmap.Record) booking.RateResult {
	return booking.RateResult{
		RateID:      r.Int(colRateID),
		Hotel:       r.Text(colHotelName),
		RoomType:    r.Text(colRoomType),
		Season:      r.Text(colSeasonName),
		BaseNightly: r.Decimal(colBaseNightly),
		ExtraPerson: r.Decimal(colExtraPerson),
	}
}

func toPrice(r rowmap.Record) booking.PriceCalculationResult {
	return booking.PriceCalculationResult{
		Total:     r.Decimal(colTotal),
		PerNight:  r.Decimal(colPerNight),
		Nights:    r.Int(colNights),
		Season:    r.Text(colSeason),
		Breakdown: r.Text(colBreakdown),
	}
}

func toReservation(r rowmap.Record) booking.ReservationResult {
	return booking.ReservationResult{
		ReservationID: r.Int(colReservationID),
		Success:       r.Bool(colSuccess),
		Message:       r.Text(colMessage),
		Total:         r.Decimal(colComputedTotal),
	}
}
