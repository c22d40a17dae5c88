package cli

import (
	"time"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jholiday"
	"github.com/rabitt1ove/jholiday/internal/render"
)

// yearMonthArgs parses "YEAR [MONTH]". month is zero when omitted.
func yearMonthArgs(args []string) (year int, month time.Month, err error) {
	if year, err = parseYear(args[0]); err != nil {
		return 0, 0, err
	}
	if len(args) > 1 {
		if month, err = parseMonth(args[1]); err != nil {
			return 0, 0, err
		}
	}
	return year, month, nil
}

func (a *app) listCmd() *cobra.Command {
	var name string
	c := &cobra.Command{
		Use:   "list YEAR [MONTH]",
		Short: "List the holidays of a year or month",
		Example: `  jpholiday list 2024
  jpholiday list 2019 5 --lang en
  jpholiday list 2024 --name '*振替*'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := yearMonthArgs(args)
			if err != nil {
				return err
			}

			var hs []jpholiday.Holiday
			if month == 0 {
				hs = a.cal.HolidaysInYear(year)
			} else {
				hs = a.cal.HolidaysInMonth(year, month)
			}

			if name != "" {
				g, err := glob.Compile(name)
				if err != nil {
					return errors.Wrapf(err, "invalid --name pattern %q", name)
				}
				hs = filterHolidays(hs, g)
			}
			return a.render(cmd, render.Holidays(hs))
		},
	}
	c.Flags().StringVar(&name, "name", "", "only holidays whose label or kind matches this glob")
	return c
}

// filterHolidays keeps the holidays whose label or kind identifier matches g.
func filterHolidays(hs []jpholiday.Holiday, g glob.Glob) []jpholiday.Holiday {
	var out []jpholiday.Holiday
	for _, h := range hs {
		if g.Match(h.Name) || g.Match(h.Kind.String()) {
			out = append(out, h)
		}
	}
	return out
}

func (a *app) datesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dates YEAR [MONTH]",
		Short: "Print only the holiday dates of a year or month",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := yearMonthArgs(args)
			if err != nil {
				return err
			}
			if month == 0 {
				return a.render(cmd, render.Dates(a.cal.DatesInYear(year)))
			}
			return a.render(cmd, render.Dates(a.cal.DatesInMonth(year, month)))
		},
	}
}

func (a *app) daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days YEAR MONTH",
		Short: "Print the days of month that are holidays",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := yearMonthArgs(args)
			if err != nil {
				return err
			}
			return a.render(cmd, render.Days(a.cal.DaysInMonth(year, month)))
		},
	}
}

func (a *app) isCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is [DATE]",
		Short: "Report whether a date is a holiday",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := dateArg(args)
			if err != nil {
				return err
			}
			h := render.CheckRow{
				Date:   formatDate(t),
				Result: a.cal.IsHoliday(t),
				Name:   a.cal.HolidayName(t),
			}
			return a.render(cmd, render.CheckRows{h})
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [DATE]",
		Short: "Print the holiday on a date, if any",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := dateArg(args)
			if err != nil {
				return err
			}
			return a.render(cmd, render.Holidays(a.cal.HolidaysBetween(t, t)))
		},
	}
}

func (a *app) nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next [DATE]",
		Short: "Print the first holiday after a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := dateArg(args)
			if err != nil {
				return err
			}
			return a.render(cmd, render.Holidays([]jpholiday.Holiday{a.cal.NextHoliday(t)}))
		},
	}
}

func (a *app) prevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev [DATE]",
		Short: "Print the last holiday before a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := dateArg(args)
			if err != nil {
				return err
			}
			return a.render(cmd, render.Holidays([]jpholiday.Holiday{a.cal.PreviousHoliday(t)}))
		},
	}
}

func (a *app) equinoxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equinox YEAR [TO_YEAR]",
		Short: "Print the approximated equinox dates",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseYear(args[0])
			if err != nil {
				return err
			}
			to := from
			if len(args) > 1 {
				if to, err = parseYear(args[1]); err != nil {
					return err
				}
			}
			if to < from {
				return errors.Errorf("invalid year range %d-%d", from, to)
			}

			rows := make(render.EquinoxRows, 0, to-from+1)
			for y := from; y <= to; y++ {
				rows = append(rows, render.EquinoxRow{
					Year:     y,
					Vernal:   time.Date(y, time.March, jpholiday.VernalEquinox(y), 0, 0, 0, 0, time.UTC).Format(jpholiday.DateLayout),
					Autumnal: time.Date(y, time.September, jpholiday.AutumnalEquinox(y), 0, 0, 0, 0, time.UTC).Format(jpholiday.DateLayout),
				})
			}
			return a.render(cmd, rows)
		},
	}
}
