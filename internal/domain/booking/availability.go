package booking

import "time"

// UnknownRoomType is reported when the store returns no name for a room type.
const UnknownRoomType = "Desconocido"

type AvailabilityQuery struct {
	HotelID    int32
	RoomTypeID int32
	StartDate  time.Time
	EndDate    time.Time
}

// AvailabilityResult is one room type's inventory for the queried range.
// The store guarantees 0 <= AvailableRooms <= TotalRooms.
type AvailabilityResult struct {
	RoomType       string
	TotalRooms     int32
	AvailableRooms int32
	MaxOccupancy   int32
}
