package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomTypeFilter selects either every room type of a hotel or exactly one.
// The zero value matches any room type.
type RoomTypeFilter struct {
	id    int32
	exact bool
}

func AnyRoomType() RoomTypeFilter {
	return RoomTypeFilter{}
}

func ExactRoomType(id int32) RoomTypeFilter {
	return RoomTypeFilter{id: id, exact: true}
}

// Exactly returns the selected id and true, or false when the filter is Any.
func (f RoomTypeFilter) Exactly() (int32, bool) {
	return f.id, f.exact
}

func (f RoomTypeFilter) IsAny() bool {
	return !f.exact
}

type RateQuery struct {
	HotelID       int32
	RoomType      RoomTypeFilter
	ReferenceDate time.Time
}

// RateResult mirrors one row of the rates contract. Any column may be NULL.
type RateResult struct {
	RateID      *int32
	Hotel       *string
	RoomType    *string
	Season      *string
	BaseNightly *decimal.Decimal
	ExtraPerson *decimal.Decimal
}
