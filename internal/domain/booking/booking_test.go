//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", in: "2026-12-24", want: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", in: "2028-02-29", want: time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "not a leap year", in: "2026-02-29", wantErr: true},
		{name: "timestamp rejected", in: "2026-12-24T10:00:00Z", wantErr: true},
		{name: "day first rejected", in: "24-12-2026", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.ParseDate(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got))
			assert.Equal(t, tc.in, booking.FormatDate(got))
		})
	}
}

func TestRoomTypeFilter(t *testing.T) {
	t.Run("zero value matches any room type", func(t *testing.T) {
		var f booking.RoomTypeFilter
		_, ok := f.Exactly()
		assert.False(t, ok)
		assert.True(t, f.IsAny())
		assert.Equal(t, booking.AnyRoomType(), f)
	})

	t.Run("exact filter carries its id", func(t *testing.T) {
		f := booking.ExactRoomType(3)
		id, ok := f.Exactly()
		assert.True(t, ok)
		assert.Equal(t, int32(3), id)
		assert.False(t, f.IsAny())
	})
}

func TestFailedReservation(t *testing.T) {
	got := booking.FailedReservation()

	assert.Nil(t, got.ReservationID)
	require.NotNil(t, got.Success)
	assert.False(t, *got.Success)
	assert.False(t, got.Succeeded())
	require.NotNil(t, got.Message)
	assert.Equal(t, booking.ReservationFailedMessage, *got.Message)
	require.NotNil(t, got.Total)
	assert.True(t, got.Total.Equal(decimal.Zero))
}

func TestReservationResult_Succeeded(t *testing.T) {
	assert.False(t, booking.ReservationResult{}.Succeeded())

	yes := true
	assert.True(t, booking.ReservationResult{Success: &yes}.Succeeded())
}

func TestPriceCalculationResult_Priced(t *testing.T) {
	assert.False(t, booking.Unpriceable().Priced())

	zero := decimal.Zero
	assert.True(t, booking.PriceCalculationResult{Total: &zero}.Priced(), "a computed zero is still a price")
}
