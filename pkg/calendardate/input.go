package calendardate

import (
	"time"

	"cloud.google.com/go/civil"
)

// Input is the source a CalendarDate is built from. It is one of ISO,
// Native or Unrecognized.
type Input interface {
	input()
}

// ISO is a calendar date written as YYYY-MM-DD. Month and day may omit the
// leading zero.
type ISO string

// Native is an already constructed instant. A zero Time is treated as the
// invalid instant.
type Native struct {
	Time time.Time
}

// Unrecognized carries a value that could not be resolved to a date.
// Constructing from it heals to the current instant.
type Unrecognized struct {
	Value any
}

func (ISO) input()          {}
func (Native) input()       {}
func (Unrecognized) input() {}

// InputOf resolves a loosely typed value into an Input
//
//   - string: ISO
//   - time.Time, non-nil *time.Time: Native
//   - CalendarDate, non-nil *CalendarDate: Native of its underlying date
//   - civil.Date: ISO of its canonical text
//   - Input: returned as is
//   - anything else, including nil: Unrecognized
func InputOf(v any) Input {
	switch val := v.(type) {
	case Input:
		return val
	case string:
		return ISO(val)
	case time.Time:
		return Native{Time: val}
	case *time.Time:
		if val != nil {
			return Native{Time: *val}
		}
	case CalendarDate:
		return Native{Time: val.date}
	case *CalendarDate:
		if val != nil {
			return Native{Time: val.date}
		}
	case civil.Date:
		return ISO(val.String())
	}
	return Unrecognized{Value: v}
}
