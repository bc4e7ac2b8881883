package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

type PriceCalculationRequest struct {
	HotelID    int32
	RoomTypeID int32
	StartDate  time.Time
	EndDate    time.Time
	Persons    int32
	Rooms      int32
}

// PriceCalculationResult keeps NULLs from the store: a nil Total means the
// request could not be priced, which is different from a computed zero.
// Breakdown is the store's JSON explanation, passed through as text.
type PriceCalculationResult struct {
	Total     *decimal.Decimal
	PerNight  *decimal.Decimal
	Nights    *int32
	Season    *string
	Breakdown *string
}

// Unpriceable is returned when the store produced no price row.
func Unpriceable() PriceCalculationResult {
	return PriceCalculationResult{}
}

func (r PriceCalculationResult) Priced() bool {
	return r.Total != nil
}
