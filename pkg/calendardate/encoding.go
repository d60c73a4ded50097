package calendardate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// String returns the ISO form of the date
func (d CalendarDate) String() string {
	return d.ISOString()
}

// MarshalText encodes the date as YYYY-MM-DD. An invalid date encodes as empty text.
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.ISOString()), nil
}

// UnmarshalText decodes ISO text. Unrecognized text heals the same way New
// does. The location, logger and clock already set on d are kept.
func (d *CalendarDate) UnmarshalText(text []byte) error {
	*d = New(ISO(string(text)), d.carriedOptions()...)
	return nil
}

// MarshalJSON encodes the date as a JSON string
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ISOString())
}

// UnmarshalJSON decodes a JSON string. JSON null leaves d unchanged.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("calendar date must be a JSON string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

func (d *CalendarDate) carriedOptions() []Option {
	return []Option{
		WithLocation(d.loc),
		WithLogger(d.logger),
		WithClock(d.clock),
	}
}
