package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/username/calendardate/internal/config"
	"github.com/username/calendardate/pkg/calendardate"
	"gopkg.in/yaml.v3"
)

// report is a command result that can also render itself as plain text
type report interface {
	writeText(w io.Writer)
}

func writeOutput(w io.Writer, r report) error {
	format := config.OutputText
	if cfg != nil {
		format = cfg.Output
	}

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		r.writeText(w)
	}
	return nil
}

type dateReport struct {
	Input                 string `json:"input" yaml:"input"`
	ISO                   string `json:"iso" yaml:"iso"`
	Year                  int    `json:"year" yaml:"year"`
	Month                 int    `json:"month" yaml:"month"`
	Day                   int    `json:"day" yaml:"day"`
	Valid                 bool   `json:"valid" yaml:"valid"`
	ValidString           bool   `json:"valid_string" yaml:"valid_string"`
	Healed                bool   `json:"healed" yaml:"healed"`
	TimezoneOffsetMinutes int    `json:"timezone_offset_minutes" yaml:"timezone_offset_minutes"`
	LeapYear              bool   `json:"leap_year" yaml:"leap_year"`
	DaysInMonth           int    `json:"days_in_month" yaml:"days_in_month"`
}

func newDateReport(input string, d calendardate.CalendarDate) dateReport {
	return dateReport{
		Input:                 input,
		ISO:                   d.ISOString(),
		Year:                  d.Year(),
		Month:                 d.Month(),
		Day:                   d.Day(),
		Valid:                 d.IsValidDate(),
		ValidString:           d.IsValidDateString(),
		Healed:                d.WasHealed(),
		TimezoneOffsetMinutes: d.TimezoneOffsetMinutes(),
		LeapYear:              d.IsLeapYear(),
		DaysInMonth:           d.DaysInMonth(),
	}
}

func (r dateReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "Input:          %s\n", r.Input)
	fmt.Fprintf(w, "ISO:            %s\n", r.ISO)
	fmt.Fprintf(w, "Year:           %d\n", r.Year)
	fmt.Fprintf(w, "Month:          %d\n", r.Month)
	fmt.Fprintf(w, "Day:            %d\n", r.Day)
	fmt.Fprintf(w, "Valid date:     %t\n", r.Valid)
	fmt.Fprintf(w, "Valid string:   %t\n", r.ValidString)
	fmt.Fprintf(w, "Healed:         %t\n", r.Healed)
	fmt.Fprintf(w, "TZ offset:      %d min\n", r.TimezoneOffsetMinutes)
	fmt.Fprintf(w, "Leap year:      %t\n", r.LeapYear)
	fmt.Fprintf(w, "Days in month:  %d\n", r.DaysInMonth)
}

type shiftReport struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Years  int    `json:"years" yaml:"years"`
	Months int    `json:"months" yaml:"months"`
	Days   int    `json:"days" yaml:"days"`
	Healed bool   `json:"healed" yaml:"healed"`
	Valid  bool   `json:"valid" yaml:"valid"`
}

func (r shiftReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "%s -> %s (%+dy %+dm %+dd)\n", r.From, r.To, r.Years, r.Months, r.Days)
	if r.Healed {
		fmt.Fprintln(w, "warning: input was not a date, shifted from today")
	}
	if !r.Valid {
		fmt.Fprintln(w, "warning: result is not a valid calendar date")
	}
}

type compareReport struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Equal    bool   `json:"equal" yaml:"equal"`
	IsBefore bool   `json:"is_before" yaml:"is_before"`
	IsAfter  bool   `json:"is_after" yaml:"is_after"`
	Compare  int    `json:"compare" yaml:"compare"`
	Healed   bool   `json:"healed" yaml:"healed"`
}

func (r compareReport) writeText(w io.Writer) {
	order := "same day as"
	switch r.Compare {
	case -1:
		order = "earlier than"
	case 1:
		order = "later than"
	}
	fmt.Fprintf(w, "%s is %s %s\n", r.A, order, r.B)
	fmt.Fprintf(w, "  equal=%t isBefore=%t isAfter=%t\n", r.Equal, r.IsBefore, r.IsAfter)
	if r.Healed {
		fmt.Fprintln(w, "warning: an input was not a date and was healed to today")
	}
}

type monthReport struct {
	Month int `json:"month" yaml:"month"`
	Days  int `json:"days" yaml:"days"`
}

type infoReport struct {
	Year     int           `json:"year" yaml:"year"`
	LeapYear bool          `json:"leap_year" yaml:"leap_year"`
	Months   []monthReport `json:"months" yaml:"months"`
}

func (r infoReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "Year %d (leap year: %t)\n", r.Year, r.LeapYear)
	for _, m := range r.Months {
		fmt.Fprintf(w, "  %02d  %d days\n", m.Month, m.Days)
	}
}
