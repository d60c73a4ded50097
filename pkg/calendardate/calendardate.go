// Package calendardate provides CalendarDate, a calendar-date value that
// heals unrecognized input to the current date instead of failing.
package calendardate

import (
	"regexp"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/username/calendardate/pkg/dateutil"
	"go.uber.org/zap"
)

// isoDateRegex accepts years 1000-2999, month 1-12 and day 1-31. Days are not
// checked against the month here.
var isoDateRegex = regexp.MustCompile(`^([12]\d{3})-(0?[1-9]|1[0-2])-(0?[1-9]|[12]\d|3[01])$`)

// CalendarDate is a date backed by a single instant
type CalendarDate struct {
	date       time.Time
	valid      bool
	sourceText string
	wasHealed  bool

	loc    *time.Location
	logger *zap.Logger
	clock  func() time.Time
}

// Option configures construction of a CalendarDate
type Option func(*CalendarDate)

// WithLogger sets the sink for construction and arithmetic diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(d *CalendarDate) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithLocation sets the zone dates are built and read in
func WithLocation(loc *time.Location) Option {
	return func(d *CalendarDate) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// WithClock sets the source of "now" used when healing
func WithClock(clock func() time.Time) Option {
	return func(d *CalendarDate) {
		if clock != nil {
			d.clock = clock
		}
	}
}

// New builds a CalendarDate from in. It never fails: unrecognized input is
// healed to the current instant and reported through WasHealed.
func New(in Input, opts ...Option) CalendarDate {
	d := CalendarDate{
		loc:    time.Local,
		logger: zap.NewNop(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(&d)
	}

	switch src := in.(type) {
	case Native:
		if !src.Time.IsZero() {
			d.date = src.Time.In(d.loc)
			d.valid = true
		}
		d.sourceText = d.ISOString()
	case ISO:
		if padded, date, ok := d.parseISO(string(src)); ok {
			d.sourceText = padded
			d.date = date
			d.valid = true
		} else {
			d.heal(string(src))
		}
	case Unrecognized:
		d.heal(src.Value)
	default:
		d.heal(in)
	}

	if !d.IsValidDate() {
		d.logger.Warn("Date is not a valid calendar instant",
			zap.String("source", d.sourceText),
			zap.Bool("healed", d.wasHealed))
	}

	return d
}

// Parse builds a CalendarDate from an ISO date string
func Parse(s string, opts ...Option) CalendarDate {
	return New(ISO(s), opts...)
}

// FromTime builds a CalendarDate that adopts t
func FromTime(t time.Time, opts ...Option) CalendarDate {
	return New(Native{Time: t}, opts...)
}

// FromCivil builds a CalendarDate at midnight of c in the configured location
func FromCivil(c civil.Date, opts ...Option) CalendarDate {
	cfg := CalendarDate{loc: time.Local}
	for _, opt := range opts {
		opt(&cfg)
	}

	var t time.Time
	if c.IsValid() {
		t = dateutil.DateIn(c.Year, int(c.Month), c.Day, cfg.loc)
	}
	return New(Native{Time: t}, opts...)
}

func (d *CalendarDate) parseISO(s string) (string, time.Time, bool) {
	m := isoDateRegex.FindStringSubmatch(s)
	if m == nil {
		return "", time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	// Days past the end of the month carry into the next one
	date := dateutil.DateIn(year, month, day, d.loc)
	return dateutil.FormatISODate(year, month, day), date, true
}

func (d *CalendarDate) heal(value any) {
	d.sourceText = ""
	d.date = d.clock().In(d.loc)
	d.valid = true
	d.wasHealed = true

	d.logger.Warn("Unrecognized date input, healing to current date",
		zap.Any("input", value),
		zap.String("iso", d.ISOString()))
}

// Date returns the underlying instant
func (d CalendarDate) Date() time.Time {
	return d.date
}

// Year returns the calendar year, or 0 if the date is invalid
func (d CalendarDate) Year() int {
	if !d.valid {
		return 0
	}
	return d.date.Year()
}

// Month returns the 1-based month, or 0 if the date is invalid
func (d CalendarDate) Month() int {
	if !d.valid {
		return 0
	}
	return int(d.date.Month())
}

// Day returns the day of the month, or 0 if the date is invalid
func (d CalendarDate) Day() int {
	if !d.valid {
		return 0
	}
	return d.date.Day()
}

// Time returns milliseconds since the Unix epoch, or 0 if the date is invalid
func (d CalendarDate) Time() int64 {
	if !d.valid {
		return 0
	}
	return d.date.UnixMilli()
}

// ISOString returns the zero-padded YYYY-MM-DD form, or "" if the date is invalid
func (d CalendarDate) ISOString() string {
	if !d.valid {
		return ""
	}
	return dateutil.FormatISODate(d.Year(), d.Month(), d.Day())
}

// TimezoneOffsetMinutes returns the minutes to add to local time to reach
// UTC. Zones east of UTC are negative.
func (d CalendarDate) TimezoneOffsetMinutes() int {
	if !d.valid {
		return 0
	}
	return dateutil.TimezoneOffsetMinutes(d.date)
}

// WasHealed reports whether construction fell back to the current instant
func (d CalendarDate) WasHealed() bool {
	return d.wasHealed
}

// SourceText returns the canonical text the date was built from. It is
// empty for healed dates.
func (d CalendarDate) SourceText() string {
	return d.sourceText
}

// Location returns the zone the date is read in
func (d CalendarDate) Location() *time.Location {
	if d.loc == nil {
		return time.Local
	}
	return d.loc
}

// IsValidDateString reports whether the source text is exactly the
// canonical form of the current date. It fails for healed dates and for
// ISO input that carried into another day, such as 2024-02-31.
func (d CalendarDate) IsValidDateString() bool {
	if !d.IsValidDate() {
		return false
	}
	return d.ISOString() == d.sourceText
}

// IsValidDate reports whether the date holds a real calendar day
func (d CalendarDate) IsValidDate() bool {
	if !d.valid {
		return false
	}
	month := d.Month()
	if month < 1 || month > 12 {
		return false
	}
	day := d.Day()
	return day >= 1 && day <= dateutil.DaysInMonth(month, d.Year())
}

// IsLeapYear reports whether the date's year is a leap year
func (d CalendarDate) IsLeapYear() bool {
	return dateutil.IsLeapYear(d.Year())
}

// DaysInMonth returns the length of the date's month
func (d CalendarDate) DaysInMonth() int {
	return dateutil.DaysInMonth(d.Month(), d.Year())
}

// Civil returns the date as a civil.Date. An invalid date gives the zero civil.Date.
func (d CalendarDate) Civil() civil.Date {
	if !d.valid {
		return civil.Date{}
	}
	return civil.DateOf(d.date)
}

func (d CalendarDate) log() *zap.Logger {
	if d.logger == nil {
		return zap.NewNop()
	}
	return d.logger
}
