package calendardate

import (
	"time"

	"github.com/username/calendardate/pkg/dateutil"
	"go.uber.org/zap"
)

// AddYear returns the date n years later. February 29 carries into March 1
// in a common year.
func (d CalendarDate) AddYear(n int) CalendarDate {
	return d.Shift(n, 0, 0)
}

// AddMonth returns the date n months later. A day past the end of the
// target month carries forward, so 2024-01-31 plus one month is 2024-03-02.
func (d CalendarDate) AddMonth(n int) CalendarDate {
	return d.Shift(0, n, 0)
}

// AddDay returns the date n days later
func (d CalendarDate) AddDay(n int) CalendarDate {
	return d.Shift(0, 0, n)
}

// SubtractYear returns the date n years earlier
func (d CalendarDate) SubtractYear(n int) CalendarDate {
	return d.Shift(-n, 0, 0)
}

// SubtractMonth returns the date n months earlier
func (d CalendarDate) SubtractMonth(n int) CalendarDate {
	return d.Shift(0, -n, 0)
}

// SubtractDay returns the date n days earlier
func (d CalendarDate) SubtractDay(n int) CalendarDate {
	return d.Shift(0, 0, -n)
}

// Shift moves the date by the given number of years, months and days in a
// single normalization step. The result is rebuilt from its zero-padded ISO
// form, so time of day is dropped. A result that cannot be written as a
// four-digit year is invalid. Shifting an invalid date stays invalid.
func (d CalendarDate) Shift(years, months, days int) CalendarDate {
	out := d
	if !d.valid {
		d.log().Warn("Shifting an invalid date",
			zap.Int("years", years),
			zap.Int("months", months),
			zap.Int("days", days))
		return out
	}

	// Carry in UTC so the zone's offset changes cannot pull the result into
	// a neighbouring day
	shifted := time.Date(
		d.date.Year()+years,
		d.date.Month()+time.Month(months),
		d.date.Day()+days,
		0, 0, 0, 0, time.UTC)

	iso := dateutil.FormatISODate(shifted.Year(), int(shifted.Month()), shifted.Day())
	parsed, err := time.Parse(dateutil.ISODateLayout, iso)
	if err != nil {
		d.log().Warn("Shifted date is not a valid calendar instant",
			zap.String("iso", iso),
			zap.Int("year", shifted.Year()),
			zap.Error(err))
		out.date = time.Time{}
		out.valid = false
		out.sourceText = ""
		return out
	}

	out.date = dateutil.DateIn(parsed.Year(), int(parsed.Month()), parsed.Day(), d.Location())
	out.valid = true
	out.sourceText = iso
	return out
}
