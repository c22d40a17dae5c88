package jpholiday

import (
	"sort"
	"time"
)

// entry is one computed holiday before localization.
type entry struct {
	date date
	kind Kind
}

// substitution selects how a holiday lost to a Sunday is compensated.
type substitution int

const (
	noSubstitute substitution = iota
	// nextDayIfSunday adds a 振替休日 on the day after a Sunday holiday.
	nextDayIfSunday
	// goldenWeek adds May 6 when May 5 is a Sunday, Monday or Tuesday, i.e.
	// whenever one of May 3-5 fell on a Sunday.
	goldenWeek
)

// anchor resolves the regular date of a holiday in a year.
type anchor func(year int) date

func fixed(month time.Month, day int) anchor {
	return func(year int) date {
		return date{year: year, month: month, day: day}
	}
}

// nthMonday implements the Happy Monday system.
func nthMonday(month time.Month, n int) anchor {
	return func(year int) date {
		return nthWeekday(year, month, n, time.Monday)
	}
}

func vernalEquinox(year int) date {
	return date{year: year, month: time.March, day: VernalEquinox(year)}
}

func autumnalEquinox(year int) date {
	return date{year: year, month: time.September, day: AutumnalEquinox(year)}
}

// rule is one holiday as established (and later amended) by law.
type rule struct {
	kind   Kind
	anchor anchor
	// from and until bound the years the rule is in force, inclusive.
	// Zero leaves the bound open.
	from, until int
	substitute  substitution
	// moved replaces the anchor for single years.
	moved map[int]date
}

func (r rule) inForce(year int) bool {
	if r.from != 0 && year < r.from {
		return false
	}
	if r.until != 0 && year > r.until {
		return false
	}
	return true
}

func (r rule) dateIn(year int) date {
	if d, ok := r.moved[year]; ok {
		return d
	}
	return r.anchor(year)
}

// bridge declares a 国民の休日 on the single day between two holidays of
// the given kinds when they are exactly two days apart.
type bridge struct {
	before, after Kind
}

// rules lists every holiday in calendar order. Ordering only matters for
// entries sharing a date, which the table never produces.
var rules = []rule{
	{kind: NewYearsDay, anchor: fixed(time.January, 1), substitute: nextDayIfSunday},
	{kind: ComingOfAgeDay, anchor: nthMonday(time.January, 2)},

	{kind: NationalFoundationDay, anchor: fixed(time.February, 11), substitute: nextDayIfSunday},
	// Applied to every year, including the years before the 2019 accession.
	{kind: EmperorsBirthday, anchor: fixed(time.February, 23), substitute: nextDayIfSunday},

	{kind: VernalEquinoxDay, anchor: vernalEquinox, substitute: nextDayIfSunday},

	{kind: ShowaDay, anchor: fixed(time.April, 29), substitute: nextDayIfSunday},
	// Imperial transition, 2019.
	{kind: NationalHoliday, anchor: fixed(time.April, 30), from: 2019, until: 2019},
	{kind: EnthronementDay, anchor: fixed(time.May, 1), from: 2019, until: 2019},
	{kind: NationalHoliday, anchor: fixed(time.May, 2), from: 2019, until: 2019},

	{kind: ConstitutionMemorialDay, anchor: fixed(time.May, 3)},
	{kind: GreeneryDay, anchor: fixed(time.May, 4)},
	{kind: ChildrensDay, anchor: fixed(time.May, 5), substitute: goldenWeek},

	// Tokyo Olympics moved Marine Day, Sports Day and Mountain Day.
	{kind: MarineDay, anchor: nthMonday(time.July, 3), moved: map[int]date{
		2020: {2020, time.July, 23},
		2021: {2021, time.July, 22},
	}},
	{kind: MountainDay, anchor: fixed(time.August, 11), from: 2016, substitute: nextDayIfSunday, moved: map[int]date{
		2020: {2020, time.August, 10},
		2021: {2021, time.August, 8},
	}},

	{kind: RespectForTheAgedDay, anchor: nthMonday(time.September, 3)},
	{kind: AutumnalEquinoxDay, anchor: autumnalEquinox, substitute: nextDayIfSunday},

	{kind: SportsDay, anchor: nthMonday(time.October, 2), moved: map[int]date{
		2020: {2020, time.July, 24},
		2021: {2021, time.July, 23},
	}},

	{kind: CultureDay, anchor: fixed(time.November, 3), substitute: nextDayIfSunday},
	{kind: LaborThanksgivingDay, anchor: fixed(time.November, 23), substitute: nextDayIfSunday},

	// Akihito's birthday, until the abdication.
	{kind: EmperorsBirthday, anchor: fixed(time.December, 23), until: 2018, substitute: nextDayIfSunday},
}

var bridges = []bridge{
	{before: RespectForTheAgedDay, after: AutumnalEquinoxDay},
}

// yearEntries evaluates the rule table for one year, sorted by date.
func yearEntries(year int) []entry {
	entries := make([]entry, 0, 24)
	for _, r := range rules {
		if !r.inForce(year) {
			continue
		}
		d := r.dateIn(year)
		entries = append(entries, entry{date: d, kind: r.kind})

		switch r.substitute {
		case nextDayIfSunday:
			if d.weekday() == time.Sunday {
				entries = append(entries, entry{date: d.addDays(1), kind: SubstituteHoliday})
			}
		case goldenWeek:
			if wd := d.weekday(); wd <= time.Tuesday {
				entries = append(entries, entry{date: d.addDays(1), kind: SubstituteHoliday})
			}
		}
	}

	for _, b := range bridges {
		before, ok1 := findKind(entries, b.before)
		after, ok2 := findKind(entries, b.after)
		if ok1 && ok2 && before.addDays(2) == after {
			entries = append(entries, entry{date: before.addDays(1), kind: NationalHoliday})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.before(entries[j].date)
	})
	return entries
}

// monthEntries returns the entries of yearEntries that fall in month.
// An invalid month yields nil.
func monthEntries(year int, month time.Month) []entry {
	if ValidateMonth(month) != nil {
		return nil
	}
	var result []entry
	for _, e := range yearEntries(year) {
		if e.date.month == month {
			result = append(result, e)
		}
	}
	return result
}

func findKind(entries []entry, k Kind) (date, bool) {
	for _, e := range entries {
		if e.kind == k {
			return e.date, true
		}
	}
	return date{}, false
}
