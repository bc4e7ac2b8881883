package response

import (
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/money"
)

type AvailabilityResponse struct {
	RoomType       string `json:"tipoHabitacion"`
	TotalRooms     int32  `json:"cantidadTotal"`
	AvailableRooms int32  `json:"cantidadDisponible"`
	MaxOccupancy   int32  `json:"capacidadPersonas"`
}

// RateResponse keeps store NULLs as JSON null.
type RateResponse struct {
	RateID      *int32        `json:"idTarifa"`
	Hotel       *string       `json:"hotel"`
	RoomType    *string       `json:"tipoHabitacion"`
	Season      *string       `json:"temporada"`
	BaseNightly *money.Amount `json:"precioBaseNoche" swaggertype:"number"`
	ExtraPerson *money.Amount `json:"precioPersonaAdicional" swaggertype:"number"`
}

// PriceResponse is all nulls when no rate applies to the stay.
type PriceResponse struct {
	Total     *money.Amount `json:"precioTotal" swaggertype:"number"`
	PerNight  *money.Amount `json:"precioPorNoche" swaggertype:"number"`
	Nights    *int32        `json:"numeroNoches"`
	Season    *string       `json:"temporada"`
	Breakdown *string       `json:"desglose"`
}

// ReservationResponse keeps store NULLs as JSON null, like RateResponse.
type ReservationResponse struct {
	ReservationID *int32        `json:"idReserva"`
	Success       *bool         `json:"exito"`
	Message       *string       `json:"mensaje"`
	Total         *money.Amount `json:"totalCalculado" swaggertype:"number"`
}

func FromAvailabilityResults(rs []booking.AvailabilityResult) []AvailabilityResponse {
	out := make([]AvailabilityResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, AvailabilityResponse{
			RoomType:       r.RoomType,
			TotalRooms:     r.TotalRooms,
			AvailableRooms: r.AvailableRooms,
			MaxOccupancy:   r.MaxOccupancy,
		})
	}
	return out
}

func FromRateResults(rs []booking.RateResult) []RateResponse {
	out := make([]RateResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, RateResponse{
			RateID:      r.RateID,
			Hotel:       r.Hotel,
			RoomType:    r.RoomType,
			Season:      r.Season,
			BaseNightly: money.FromPtr(r.BaseNightly),
			ExtraPerson: money.FromPtr(r.ExtraPerson),
		})
	}
	return out
}

func FromPriceResult(r booking.PriceCalculationResult) PriceResponse {
	return PriceResponse{
		Total:     money.FromPtr(r.Total),
		PerNight:  money.FromPtr(r.PerNight),
		Nights:    r.Nights,
		Season:    r.Season,
		Breakdown: r.Breakdown,
	}
}

func FromReservationResult(r booking.ReservationResult) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		Success:       r.Success,
		Message:       r.Message,
		Total:         money.FromPtr(r.Total),
	}
}
