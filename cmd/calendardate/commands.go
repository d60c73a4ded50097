package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/calendardate/pkg/calendardate"
	"github.com/username/calendardate/pkg/dateutil"
	"go.uber.org/zap"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [date]",
		Short: "Parse a YYYY-MM-DD date and report its fields",
		Long:  "Parse a YYYY-MM-DD date. Missing or unrecognized input is healed to today and reported as healed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in calendardate.Input = calendardate.Unrecognized{}
			input := ""
			if len(args) == 1 {
				input = args[0]
				in = calendardate.InputOf(input)
			}

			d := calendardate.New(in, dateOptions()...)
			logger.Debug("Date parsed",
				zap.String("input", input),
				zap.String("iso", d.ISOString()),
				zap.Bool("healed", d.WasHealed()))

			return writeOutput(cmd.OutOrStdout(), newDateReport(input, d))
		},
	}
}

func shiftCmd() *cobra.Command {
	var years, months, days int

	cmd := &cobra.Command{
		Use:   "shift <date>",
		Short: "Add or subtract years, months and days",
		Long:  "Shift a date by whole years, months and days. Overflow carries forward, so 2024-01-31 plus one month is 2024-03-02.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := calendardate.Parse(args[0], dateOptions()...)
			to := from.Shift(years, months, days)

			logger.Debug("Date shifted",
				zap.String("from", from.ISOString()),
				zap.String("to", to.ISOString()),
				zap.Int("years", years),
				zap.Int("months", months),
				zap.Int("days", days))

			return writeOutput(cmd.OutOrStdout(), shiftReport{
				From:   from.ISOString(),
				To:     to.ISOString(),
				Years:  years,
				Months: months,
				Days:   days,
				Healed: from.WasHealed(),
				Valid:  to.IsValidDate(),
			})
		},
	}

	cmd.Flags().IntVar(&years, "years", 0, "Years to add (negative to subtract)")
	cmd.Flags().IntVar(&months, "months", 0, "Months to add (negative to subtract)")
	cmd.Flags().IntVar(&days, "days", 0, "Days to add (negative to subtract)")

	return cmd
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two dates at day granularity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := calendardate.Parse(args[0], dateOptions()...)
			b := calendardate.Parse(args[1], dateOptions()...)

			return writeOutput(cmd.OutOrStdout(), compareReport{
				A:        a.ISOString(),
				B:        b.ISOString(),
				Equal:    a.IsEqual(b),
				IsBefore: a.IsBefore(b),
				IsAfter:  a.IsAfter(b),
				Compare:  a.Compare(b),
				Healed:   a.WasHealed() || b.WasHealed(),
			})
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <year> [month]",
		Short: "Report leap year and month lengths",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}

			first, last := 1, 12
			if len(args) == 2 {
				month, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid month %q: %w", args[1], err)
				}
				if month < 1 || month > 12 {
					return fmt.Errorf("month must be between 1 and 12, got %d", month)
				}
				first, last = month, month
			}

			report := infoReport{
				Year:     year,
				LeapYear: dateutil.IsLeapYear(year),
			}
			for m := first; m <= last; m++ {
				report.Months = append(report.Months, monthReport{
					Month: m,
					Days:  dateutil.DaysInMonth(m, year),
				})
			}

			return writeOutput(cmd.OutOrStdout(), report)
		},
	}
}
