package dateutil

import (
	"fmt"
	"time"
)

// ISODateLayout is the canonical calendar-date layout (YYYY-MM-DD)
const ISODateLayout = "2006-01-02"

// IsLeapYear reports whether year is a leap year in the Gregorian calendar
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given 1-based month of year
func DaysInMonth(month, year int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// FormatISODate joins year, month and day into a zero-padded YYYY-MM-DD string
func FormatISODate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// DateIn returns the first instant of the given calendar day in loc.
// Month and day overflow carry the way time.Date does, but the carry is done
// in UTC so a zone offset change cannot move the result to another day.
// When midnight falls in a DST gap the first existing hour is used.
func DateIn(year, month, day int, loc *time.Location) time.Time {
	n := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	y, m, d := n.Date()

	for hour := 0; hour < 24; hour++ {
		t := time.Date(y, m, d, hour, 0, 0, 0, loc)
		if ty, tm, td := t.Date(); ty == y && tm == m && td == d {
			return t
		}
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// TimezoneOffsetMinutes returns the difference in minutes between UTC and the
// local time of date. Zones east of UTC are negative (UTC+3 gives -180).
func TimezoneOffsetMinutes(date time.Time) int {
	_, offset := date.Zone()
	return -offset / 60
}
