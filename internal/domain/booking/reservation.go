package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationFailedMessage is reported when the store returns no result row.
const ReservationFailedMessage = "Error al crear reserva"

type ReservationRequest struct {
	HotelID    int32
	RoomTypeID int32
	StartDate  time.Time
	EndDate    time.Time
	Persons    int32
	Rooms      int32
}

// ReservationResult mirrors the crear_reserva row. A NULL column stays nil, so
// a missing total is distinguishable from a computed 0.00.
type ReservationResult struct {
	ReservationID *int32
	Success       *bool
	Message       *string
	Total         *decimal.Decimal
}

// Succeeded reports whether the store confirmed the reservation.
func (r ReservationResult) Succeeded() bool {
	return r.Success != nil && *r.Success
}

// FailedReservation is the outcome when the store returns no row at all.
func FailedReservation() ReservationResult {
	success := false
	message := ReservationFailedMessage
	total := decimal.Zero
	return ReservationResult{
		ReservationID: nil,
		Success:       &success,
		Message:       &message,
		Total:         &total,
	}
}
