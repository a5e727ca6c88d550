package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMMDDWithoutDash       = "20060102"
	DateFormatYYYYMMDDHHMMSSWithoutDash = "20060102150405"
	DateFormatYYYYMMDDWithTime          = "2006-01-02 15:04:05"
	DateFormatYYYYMMDDWithTimeAndOffset = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

// Now is a var so tests can pin the clock.
var Now = func() time.Time {
	return time.Now().UTC()
}

func ParseStringToDatetime(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, ErrInvalidFormatDate
	}
	return t, nil
}

// TruncateToDate drops the clock part of t, keeping its location.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
