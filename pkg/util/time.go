package util

import (
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

func StrToDate(str string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, str, GetDefaultTimezone())
	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

func GetDefaultTimezone() *time.Location {
	localTimeZone, _ := time.LoadLocation("Local")
	return localTimeZone
}

// EndOfDay returns the last representable millisecond of the day, so
// date-range filters built from it include every record stamped on that day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
