package render

import (
	"strconv"
	"time"

	"github.com/rabitt1ove/jholiday"
)

// Table is a result set that the text format prints as aligned columns.
// Structured formats encode the value itself.
type Table interface {
	Header() []string
	Records() [][]string
}

// HolidayRow is one holiday with its localized weekday and label.
type HolidayRow struct {
	Date    string `json:"date" yaml:"date" csv:"date" msgpack:"date"`
	Weekday string `json:"weekday" yaml:"weekday" csv:"weekday" msgpack:"weekday"`
	Name    string `json:"name" yaml:"name" csv:"name" msgpack:"name"`
	Kind    string `json:"kind" yaml:"kind" csv:"kind" msgpack:"kind"`
}

type HolidayRows []HolidayRow

// Holidays converts engine records into rows.
func Holidays(hs []jpholiday.Holiday) HolidayRows {
	rows := make(HolidayRows, 0, len(hs))
	for _, h := range hs {
		rows = append(rows, HolidayRow{
			Date:    h.DateString(),
			Weekday: h.Weekday,
			Name:    h.Name,
			Kind:    h.Kind.String(),
		})
	}
	return rows
}

func (rows HolidayRows) Header() []string {
	return []string{"DATE", "WEEKDAY", "NAME"}
}

func (rows HolidayRows) Records() [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Date, r.Weekday, r.Name})
	}
	return out
}

// DateRow is one holiday date.
type DateRow struct {
	Date string `json:"date" yaml:"date" csv:"date" msgpack:"date"`
}

type DateRows []DateRow

// Dates converts holiday dates into rows.
func Dates(ts []time.Time) DateRows {
	rows := make(DateRows, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, DateRow{Date: t.Format(jpholiday.DateLayout)})
	}
	return rows
}

func (rows DateRows) Header() []string { return []string{"DATE"} }

func (rows DateRows) Records() [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Date})
	}
	return out
}

// DayRow is one day of month that is a holiday.
type DayRow struct {
	Day int `json:"day" yaml:"day" csv:"day" msgpack:"day"`
}

type DayRows []DayRow

// Days converts days of month into rows.
func Days(days []int) DayRows {
	rows := make(DayRows, 0, len(days))
	for _, d := range days {
		rows = append(rows, DayRow{Day: d})
	}
	return rows
}

func (rows DayRows) Header() []string { return []string{"DAY"} }

func (rows DayRows) Records() [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{strconv.Itoa(r.Day)})
	}
	return out
}

// CheckRow answers a yes/no question about one date, e.g. "is it a holiday".
type CheckRow struct {
	Date   string `json:"date" yaml:"date" csv:"date" msgpack:"date"`
	Result bool   `json:"result" yaml:"result" csv:"result" msgpack:"result"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty" csv:"name" msgpack:"name,omitempty"`
}

type CheckRows []CheckRow

func (rows CheckRows) Header() []string { return []string{"DATE", "RESULT", "NAME"} }

func (rows CheckRows) Records() [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Date, strconv.FormatBool(r.Result), r.Name})
	}
	return out
}

// CountRow is the number of business days in an inclusive range.
type CountRow struct {
	From  string `json:"from" yaml:"from" csv:"from" msgpack:"from"`
	To    string `json:"to" yaml:"to" csv:"to" msgpack:"to"`
	Count int    `json:"count" yaml:"count" csv:"count" msgpack:"count"`
}

type CountRows []CountRow

func (rows CountRows) Header() []string { return []string{"FROM", "TO", "COUNT"} }

func (rows CountRows) Records() [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.From, r.To, strconv.Itoa(r.Count)})
	}
	return out
}

// EquinoxRow holds the approximated equinox days of one year.
type EquinoxRow struct {
	Year     int    `json:"year" yaml:"year" csv:"year" msgpack:"year"`
	Vernal   string `json:"vernal" yaml:"vernal" csv:"vernal" msgpack:"vernal"`
	Autumnal string `json:"autumnal" yaml:"autumnal" csv:"autumnal" msgpack:"autumnal"`
}

type EquinoxRows []EquinoxRow

func (rows EquinoxRows) Header() []string { return []string{"YEAR", "VERNAL", "AUTUMNAL"} }

func (rows EquinoxRows) Records() [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{strconv.Itoa(r.Year), r.Vernal, r.Autumnal})
	}
	return out
}

// DiffRow is a date on which the official list and the computed calendar
// disagree. An empty side means the date is missing there.
type DiffRow struct {
	Date     string `json:"date" yaml:"date" csv:"date" msgpack:"date"`
	Official string `json:"official" yaml:"official" csv:"official" msgpack:"official"`
	Computed string `json:"computed" yaml:"computed" csv:"computed" msgpack:"computed"`
}

type DiffRows []DiffRow

func (rows DiffRows) Header() []string { return []string{"DATE", "OFFICIAL", "COMPUTED"} }

func (rows DiffRows) Records() [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Date, orDash(r.Official), orDash(r.Computed)})
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
