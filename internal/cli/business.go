package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jholiday"
	"github.com/rabitt1ove/jholiday/internal/render"
)

func (a *app) businessCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "business",
		Short: "Business day queries (Monday to Friday, excluding holidays)",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "is [DATE]",
			Short: "Report whether a date is a business day",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := dateArg(args)
				if err != nil {
					return err
				}
				return a.render(cmd, render.CheckRows{{
					Date:   formatDate(t),
					Result: a.cal.IsBusinessDay(t),
					Name:   a.cal.HolidayName(t),
				}})
			},
		},
		&cobra.Command{
			Use:   "next [DATE]",
			Short: "Print the first business day on or after a date",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := dateArg(args)
				if err != nil {
					return err
				}
				return a.renderDay(cmd, a.cal.NextBusinessDay(t))
			},
		},
		&cobra.Command{
			Use:   "prev [DATE]",
			Short: "Print the last business day on or before a date",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := dateArg(args)
				if err != nil {
					return err
				}
				return a.renderDay(cmd, a.cal.PreviousBusinessDay(t))
			},
		},
		&cobra.Command{
			Use:   "count FROM TO",
			Short: "Count business days in the inclusive range",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				from, err := parseDate(args[0])
				if err != nil {
					return err
				}
				to, err := parseDate(args[1])
				if err != nil {
					return err
				}
				return a.render(cmd, render.CountRows{{
					From:  formatDate(from),
					To:    formatDate(to),
					Count: a.cal.BusinessDaysBetween(from, to),
				}})
			},
		},
	)
	return c
}

// renderDay prints a single date. The zero time (no business day within
// the search window) prints nothing.
func (a *app) renderDay(cmd *cobra.Command, t time.Time) error {
	if t.IsZero() {
		return a.render(cmd, render.Dates(nil))
	}
	return a.render(cmd, render.Dates([]time.Time{t}))
}

// formatDate formats t as a Japanese calendar date.
func formatDate(t time.Time) string {
	return t.In(jst).Format(jpholiday.DateLayout)
}
