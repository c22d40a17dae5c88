package jpholiday

import (
	"time"

	"github.com/rickar/cal"
)

// searchLimit bounds the business day search in days.
const searchLimit = 366

// businessCalendar returns a workday calendar (Monday to Friday) holding
// every holiday of the years [fromYear, toYear].
func businessCalendar(fromYear, toYear int) *cal.Calendar {
	bc := cal.NewCalendar()
	// Substitute holidays are explicit entries; weekend holidays must not be
	// shifted onto Fridays or Mondays a second time.
	bc.Observed = cal.ObservedExact
	for year := fromYear; year <= toYear; year++ {
		for _, e := range yearEntries(year) {
			bc.AddHoliday(cal.Holiday{Month: e.date.month, Day: e.date.day, Year: e.date.year})
		}
	}
	return bc
}

// IsBusinessDay reports whether the given date is a business day
// (neither a weekend nor a holiday). The date is interpreted in JST.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	d := dateFromTime(t)
	return businessCalendar(d.year, d.year).IsWorkday(d.toTime())
}

// NextHoliday returns the first holiday strictly after the given date.
func (c *Calendar) NextHoliday(t time.Time) Holiday {
	d := dateFromTime(t)
	for year := d.year; ; year++ {
		for _, e := range yearEntries(year) {
			if e.date.after(d) {
				return c.holiday(e)
			}
		}
	}
}

// PreviousHoliday returns the most recent holiday strictly before the given date.
func (c *Calendar) PreviousHoliday(t time.Time) Holiday {
	d := dateFromTime(t)
	for year := d.year; ; year-- {
		entries := yearEntries(year)
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].date.before(d) {
				return c.holiday(entries[i])
			}
		}
	}
}

// NextBusinessDay returns the next business day on or after the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	return c.scanBusinessDay(dateFromTime(t), 1)
}

// PreviousBusinessDay returns the most recent business day on or before the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	return c.scanBusinessDay(dateFromTime(t), -1)
}

func (c *Calendar) scanBusinessDay(d date, step int) time.Time {
	bc := businessCalendar(d.year-1, d.year+1)
	cur := d.toTime()
	for range searchLimit {
		if bc.IsWorkday(cur) {
			return cur
		}
		cur = cur.AddDate(0, 0, step)
	}
	return time.Time{}
}

// BusinessDaysBetween returns the count of business days in the range [from, to] inclusive.
// If from is after to, returns 0.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return 0
	}
	bc := businessCalendar(fromD.year, toD.year)
	return int(bc.CountWorkdays(fromD.toTime(), toD.toTime()))
}

// --- Package-level convenience functions ---

// IsBusinessDay reports whether the given date is a business day.
func IsBusinessDay(t time.Time) bool { return defaultCal.IsBusinessDay(t) }

// NextHoliday returns the first holiday strictly after the given date.
func NextHoliday(t time.Time) Holiday { return defaultCal.NextHoliday(t) }

// PreviousHoliday returns the most recent holiday strictly before the given date.
func PreviousHoliday(t time.Time) Holiday { return defaultCal.PreviousHoliday(t) }

// NextBusinessDay returns the next business day on or after the given date.
func NextBusinessDay(t time.Time) time.Time { return defaultCal.NextBusinessDay(t) }

// PreviousBusinessDay returns the most recent business day on or before the given date.
func PreviousBusinessDay(t time.Time) time.Time { return defaultCal.PreviousBusinessDay(t) }

// BusinessDaysBetween returns the count of business days in the range [from, to].
func BusinessDaysBetween(from, to time.Time) int { return defaultCal.BusinessDaysBetween(from, to) }
