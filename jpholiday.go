// Package jpholiday computes Japanese national holidays (国民の祝日) from the
// rules of the Public Holiday Act rather than from a fixed dataset.
//
// Every holiday is a rule: a fixed date, the n-th Monday of a month (the
// Happy Monday system) or an equinox approximated by formula, together with
// the years it is in force and one-off moves such as the 2020/2021 Olympic
// shifts. Substitute holidays (振替休日) and national holidays (国民の休日)
// are derived from those rules. Nothing is cached; every query recomputes
// the year it needs.
//
// All time.Time inputs are normalized to JST (Asia/Tokyo, UTC+9) before
// extracting the calendar date, so the correct Japanese holiday is returned
// regardless of the input timezone. Returned dates are midnight UTC.
//
// Basic usage with package-level functions:
//
//	jst := time.FixedZone("Asia/Tokyo", 9*60*60)
//	t := time.Date(2024, 1, 1, 0, 0, 0, 0, jst)
//	jpholiday.IsHoliday(t)    // true
//	jpholiday.HolidayName(t)  // "元日"
//
// For English labels, create a Calendar instance:
//
//	cal := jpholiday.New(jpholiday.WithLanguage(language.English))
//	cal.HolidayName(t) // "New Year's Day"
package jpholiday

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DateLayout is the layout of [Holiday.DateString].
const DateLayout = "2006-01-02"

// ErrInvalidMonth is returned by [ValidateMonth] for months outside
// January..December.
var ErrInvalidMonth = errors.New("jpholiday: invalid month")

// ValidateMonth reports whether m is a calendar month. Month queries do not
// fail on an invalid month; they return an empty result. Callers that want
// an error check with ValidateMonth first.
func ValidateMonth(m time.Month) error {
	if m < time.January || m > time.December {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, int(m))
	}
	return nil
}

// Holiday represents a single holiday entry.
type Holiday struct {
	Date    time.Time // The date of the holiday (midnight UTC).
	Name    string    // The holiday name in the calendar's language (e.g., "元日").
	Weekday string    // The weekday name in the calendar's language (e.g., "月").
	Kind    Kind
}

// DateString returns the date formatted as YYYY-MM-DD.
func (h Holiday) DateString() string {
	return h.Date.Format(DateLayout)
}

// Calendar answers holiday queries with labels in one language.
// Create one with [New]. A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	lang   language.Tag
	locale locale
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithLanguage selects the label language. Tags are matched against the
// supported languages (Japanese, English); anything else falls back to
// Japanese.
func WithLanguage(tag language.Tag) Option {
	return func(c *Calendar) {
		c.lang = tag
		c.locale = localeFor(tag)
	}
}

// New creates a Calendar. Without options, labels are Japanese.
func New(opts ...Option) *Calendar {
	c := &Calendar{lang: language.Japanese, locale: localeJapanese}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// Language returns the tag the calendar was configured with.
func (c *Calendar) Language() language.Tag {
	return c.lang
}

func (c *Calendar) holiday(e entry) Holiday {
	return Holiday{
		Date:    e.date.toTime(),
		Name:    c.locale.kindLabel(e.kind),
		Weekday: c.locale.weekdayLabel(e.date.weekday()),
		Kind:    e.kind,
	}
}

func (c *Calendar) holidays(entries []entry) []Holiday {
	result := make([]Holiday, 0, len(entries))
	for _, e := range entries {
		result = append(result, c.holiday(e))
	}
	return result
}

func projectDates(entries []entry) []time.Time {
	result := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.date.toTime())
	}
	return result
}

// HolidaysInYear returns all holidays in the given year, sorted by date.
//
// Holidays moved for the Tokyo Olympics appear only on their moved dates:
// in 2020 and 2021 Sports Day falls in July and October has no holiday.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	return c.holidays(yearEntries(year))
}

// DatesInYear returns the dates of all holidays in the given year, sorted.
// It is the projection of [Calendar.HolidaysInYear] onto its dates.
func (c *Calendar) DatesInYear(year int) []time.Time {
	return projectDates(yearEntries(year))
}

// HolidaysInMonth returns all holidays in the given year and month, sorted by
// date. An invalid month yields nil.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	entries := monthEntries(year, month)
	if entries == nil {
		return nil
	}
	return c.holidays(entries)
}

// DatesInMonth returns the holiday dates of the given month, sorted.
// An invalid month yields nil.
func (c *Calendar) DatesInMonth(year int, month time.Month) []time.Time {
	entries := monthEntries(year, month)
	if entries == nil {
		return nil
	}
	return projectDates(entries)
}

// DaysInMonth returns the days of month (1-31) that are holidays in the
// given month, ascending. An invalid month yields nil.
func (c *Calendar) DaysInMonth(year int, month time.Month) []int {
	entries := monthEntries(year, month)
	if entries == nil {
		return nil
	}
	days := make([]int, 0, len(entries))
	for _, e := range entries {
		days = append(days, e.date.day)
	}
	return days
}

// IsHolidayOn reports whether year-month-day is a holiday. Sundays that are
// not holidays in their own right are not reported.
func (c *Calendar) IsHolidayOn(year int, month time.Month, day int) bool {
	for _, e := range monthEntries(year, month) {
		if e.date.day == day {
			return true
		}
	}
	return false
}

// IsHoliday reports whether the given date is a holiday.
// The input time is converted to JST (Asia/Tokyo, UTC+9) before extracting
// the calendar date, so the result is always correct for the Japanese calendar
// regardless of the input timezone.
func (c *Calendar) IsHoliday(t time.Time) bool {
	d := dateFromTime(t)
	return c.IsHolidayOn(d.year, d.month, d.day)
}

// HolidayNameOn returns the holiday name for year-month-day, or an empty
// string if it is not a holiday. The date must match exactly; out-of-range
// days are not normalized into the next month.
func (c *Calendar) HolidayNameOn(year int, month time.Month, day int) string {
	want := date{year: year, month: month, day: day}
	for _, e := range monthEntries(year, month) {
		if e.date == want {
			return c.locale.kindLabel(e.kind)
		}
	}
	return ""
}

// HolidayName returns the holiday name for the given date, or an empty string
// if it is not a holiday.
func (c *Calendar) HolidayName(t time.Time) string {
	d := dateFromTime(t)
	return c.HolidayNameOn(d.year, d.month, d.day)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive,
// sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

// holidaysInRange collects holidays within the given date range (inclusive).
func (c *Calendar) holidaysInRange(from, to date) []Holiday {
	var result []Holiday
	for year := from.year; year <= to.year; year++ {
		for _, e := range yearEntries(year) {
			if e.date.inRange(from, to) {
				result = append(result, c.holiday(e))
			}
		}
	}
	return result
}

// --- Package-level convenience functions ---

// IsHoliday reports whether the given date is a holiday.
func IsHoliday(t time.Time) bool { return defaultCal.IsHoliday(t) }

// IsHolidayOn reports whether year-month-day is a holiday.
func IsHolidayOn(year int, month time.Month, day int) bool {
	return defaultCal.IsHolidayOn(year, month, day)
}

// HolidayName returns the holiday name for the given date, or "".
func HolidayName(t time.Time) string { return defaultCal.HolidayName(t) }

// HolidayNameOn returns the holiday name for year-month-day, or "".
func HolidayNameOn(year int, month time.Month, day int) string {
	return defaultCal.HolidayNameOn(year, month, day)
}

// HolidaysInYear returns all holidays in the given year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultCal.HolidaysInYear(year) }

// DatesInYear returns the dates of all holidays in the given year.
func DatesInYear(year int) []time.Time { return defaultCal.DatesInYear(year) }

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func HolidaysInMonth(year int, month time.Month) []Holiday {
	return defaultCal.HolidaysInMonth(year, month)
}

// DatesInMonth returns the holiday dates of the given month.
func DatesInMonth(year int, month time.Month) []time.Time {
	return defaultCal.DatesInMonth(year, month)
}

// DaysInMonth returns the holiday days of month for the given month.
func DaysInMonth(year int, month time.Month) []int {
	return defaultCal.DaysInMonth(year, month)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive.
func HolidaysBetween(from, to time.Time) []Holiday {
	return defaultCal.HolidaysBetween(from, to)
}
