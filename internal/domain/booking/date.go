package booking

import "time"

// DateLayout is the calendar-date format used on the wire and in store calls.
const DateLayout = time.DateOnly

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
