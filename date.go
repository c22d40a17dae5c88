package jpholiday

import (
	"fmt"
	"time"
)

// jstZone is the Asia/Tokyo timezone (UTC+9) used to normalize all input
// times to the Japanese calendar date before holiday lookups.
var jstZone = time.FixedZone("Asia/Tokyo", 9*60*60)

// date is a calendar day without time-of-day. Rules compute in this type;
// users work with time.Time.
type date struct {
	year  int
	month time.Month
	day   int
}

// newDate normalizes overflowing month/day values the way time.Date does.
func newDate(year int, month time.Month, day int) date {
	return dateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func dateOf(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

// dateFromTime converts a time.Time to a date by first normalizing to JST.
// This ensures that a moment in time always maps to the correct Japanese
// calendar date regardless of the input timezone.
func dateFromTime(t time.Time) date {
	return dateOf(t.In(jstZone))
}

func (d date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d date) weekday() time.Weekday {
	return d.toTime().Weekday()
}

func (d date) addDays(n int) date {
	return newDate(d.year, d.month, d.day+n)
}

// String formats the date as YYYY-MM-DD.
func (d date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) after(other date) bool {
	return other.before(d)
}

func (d date) inRange(from, to date) bool {
	return !d.before(from) && !to.before(d)
}
