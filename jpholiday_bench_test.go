package jpholiday

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func BenchmarkYearEntries(b *testing.B) {
	for b.Loop() {
		yearEntries(2024)
	}
}

func BenchmarkYearEntries_Olympics(b *testing.B) {
	for b.Loop() {
		yearEntries(2020)
	}
}

func BenchmarkMonthEntries_September(b *testing.B) {
	for b.Loop() {
		monthEntries(2026, time.September)
	}
}

func BenchmarkDatesInYear(b *testing.B) {
	for b.Loop() {
		DatesInYear(2024)
	}
}

func BenchmarkDaysInMonth(b *testing.B) {
	for b.Loop() {
		DaysInMonth(2019, time.May)
	}
}

func BenchmarkIsHolidayOn(b *testing.B) {
	for b.Loop() {
		IsHolidayOn(2024, time.September, 23)
	}
}

func BenchmarkHolidayNameOn(b *testing.B) {
	for b.Loop() {
		HolidayNameOn(2024, time.September, 23)
	}
}

func BenchmarkHolidayNameOn_English(b *testing.B) {
	cal := New(WithLanguage(language.English))
	for b.Loop() {
		cal.HolidayNameOn(2024, time.September, 23)
	}
}

func BenchmarkIsHoliday_JST(b *testing.B) {
	t := time.Date(2023, time.December, 31, 20, 0, 0, 0, time.UTC) // Jan 1 in Japan
	for b.Loop() {
		IsHoliday(t)
	}
}

func BenchmarkHolidaysInYear(b *testing.B) {
	for b.Loop() {
		HolidaysInYear(2024)
	}
}

func BenchmarkHolidaysBetween_AcrossYears(b *testing.B) {
	from := d(2023, time.December, 1)
	to := d(2024, time.January, 31)
	for b.Loop() {
		HolidaysBetween(from, to)
	}
}

func BenchmarkNextHoliday_AcrossYears(b *testing.B) {
	t := d(2026, time.December, 1)
	for b.Loop() {
		NextHoliday(t)
	}
}

func BenchmarkNextBusinessDay(b *testing.B) {
	t := d(2024, time.May, 3) // Golden Week
	for b.Loop() {
		NextBusinessDay(t)
	}
}

func BenchmarkBusinessDaysBetween_Year(b *testing.B) {
	from := d(2024, time.January, 1)
	to := d(2024, time.December, 31)
	for b.Loop() {
		BusinessDaysBetween(from, to)
	}
}
