package jpholiday

import "time"

// NthWeekday returns the date of the n-th occurrence (1-based) of weekday in
// the given month, at midnight UTC.
//
// Results for n <= 0 or a weekday outside Sunday..Saturday are unspecified;
// a large n spills over into the following month.
func NthWeekday(year int, month time.Month, n int, weekday time.Weekday) time.Time {
	return nthWeekday(year, month, n, weekday).toTime()
}

func nthWeekday(year int, month time.Month, n int, weekday time.Weekday) date {
	first := date{year: year, month: month, day: 1}.weekday()
	day := int(weekday) - int(first) + 1
	if day <= 0 {
		day += 7
	}
	return newDate(year, month, day+7*(n-1))
}
