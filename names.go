package jpholiday

import (
	"time"

	"golang.org/x/text/language"
)

// Kind identifies which holiday a [Holiday] entry represents.
type Kind int

const (
	// NewYearsDay is 元日, January 1.
	NewYearsDay Kind = iota + 1
	// ComingOfAgeDay is 成人の日, the 2nd Monday of January.
	ComingOfAgeDay
	// NationalFoundationDay is 建国記念の日, February 11.
	NationalFoundationDay
	// EmperorsBirthday is 天皇誕生日, February 23, and December 23 until 2018.
	EmperorsBirthday
	// VernalEquinoxDay is 春分の日, see [VernalEquinox].
	VernalEquinoxDay
	// ShowaDay is 昭和の日, April 29.
	ShowaDay
	// ConstitutionMemorialDay is 憲法記念日, May 3.
	ConstitutionMemorialDay
	// GreeneryDay is みどりの日, May 4.
	GreeneryDay
	// ChildrensDay is こどもの日, May 5.
	ChildrensDay
	// MarineDay is 海の日, the 3rd Monday of July.
	MarineDay
	// MountainDay is 山の日, August 11 from 2016.
	MountainDay
	// RespectForTheAgedDay is 敬老の日, the 3rd Monday of September.
	RespectForTheAgedDay
	// AutumnalEquinoxDay is 秋分の日, see [AutumnalEquinox].
	AutumnalEquinoxDay
	// SportsDay is スポーツの日, the 2nd Monday of October.
	SportsDay
	// CultureDay is 文化の日, November 3.
	CultureDay
	// LaborThanksgivingDay is 勤労感謝の日, November 23.
	LaborThanksgivingDay
	// EnthronementDay is the one-off holiday of 2019-05-01.
	EnthronementDay
	// NationalHoliday (国民の休日) is a weekday sandwiched between two
	// holidays, or a day declared a holiday by special legislation.
	NationalHoliday
	// SubstituteHoliday (振替休日) replaces a holiday that fell on Sunday.
	SubstituteHoliday
)

var kindIdents = [...]string{
	NewYearsDay:             "NewYearsDay",
	ComingOfAgeDay:          "ComingOfAgeDay",
	NationalFoundationDay:   "NationalFoundationDay",
	EmperorsBirthday:        "EmperorsBirthday",
	VernalEquinoxDay:        "VernalEquinoxDay",
	ShowaDay:                "ShowaDay",
	ConstitutionMemorialDay: "ConstitutionMemorialDay",
	GreeneryDay:             "GreeneryDay",
	ChildrensDay:            "ChildrensDay",
	MarineDay:               "MarineDay",
	MountainDay:             "MountainDay",
	RespectForTheAgedDay:    "RespectForTheAgedDay",
	AutumnalEquinoxDay:      "AutumnalEquinoxDay",
	SportsDay:               "SportsDay",
	CultureDay:              "CultureDay",
	LaborThanksgivingDay:    "LaborThanksgivingDay",
	EnthronementDay:         "EnthronementDay",
	NationalHoliday:         "NationalHoliday",
	SubstituteHoliday:       "SubstituteHoliday",
}

// String returns the Go identifier of the kind, e.g. "MarineDay".
func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindIdents) {
		return "Kind(?)"
	}
	return kindIdents[k]
}

// locale indexes the label tables. The order matches supportedLanguages.
type locale int

const (
	localeJapanese locale = iota
	localeEnglish
)

var supportedLanguages = []language.Tag{language.Japanese, language.English}

var languageMatcher = language.NewMatcher(supportedLanguages)

// localeFor picks the closest supported locale, falling back to Japanese
// when the matcher has no confidence in either.
func localeFor(tag language.Tag) locale {
	_, i, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return localeJapanese
	}
	return locale(i)
}

var kindLabels = [...][len(kindIdents)]string{
	localeJapanese: {
		NewYearsDay:             "元日",
		ComingOfAgeDay:          "成人の日",
		NationalFoundationDay:   "建国記念の日",
		EmperorsBirthday:        "天皇誕生日",
		VernalEquinoxDay:        "春分の日",
		ShowaDay:                "昭和の日",
		ConstitutionMemorialDay: "憲法記念日",
		GreeneryDay:             "みどりの日",
		ChildrensDay:            "こどもの日",
		MarineDay:               "海の日",
		MountainDay:             "山の日",
		RespectForTheAgedDay:    "敬老の日",
		AutumnalEquinoxDay:      "秋分の日",
		SportsDay:               "スポーツの日",
		CultureDay:              "文化の日",
		LaborThanksgivingDay:    "勤労感謝の日",
		EnthronementDay:         "即位の日",
		NationalHoliday:         "国民の休日",
		SubstituteHoliday:       "振替休日",
	},
	localeEnglish: {
		NewYearsDay:             "New Year's Day",
		ComingOfAgeDay:          "Coming of Age Day",
		NationalFoundationDay:   "National Foundation Day",
		EmperorsBirthday:        "Emperor's Birthday",
		VernalEquinoxDay:        "Vernal Equinox Day",
		ShowaDay:                "Showa Day",
		ConstitutionMemorialDay: "Constitution Memorial Day",
		GreeneryDay:             "Greenery Day",
		ChildrensDay:            "Children's Day",
		MarineDay:               "Marine Day",
		MountainDay:             "Mountain Day",
		RespectForTheAgedDay:    "Respect for the Aged Day",
		AutumnalEquinoxDay:      "Autumnal Equinox Day",
		SportsDay:               "Sports Day",
		CultureDay:              "Culture Day",
		LaborThanksgivingDay:    "Labor Thanksgiving Day",
		EnthronementDay:         "Enthronement Day",
		NationalHoliday:         "National Holiday",
		SubstituteHoliday:       "Substitute Holiday",
	},
}

// weekdayLabels is indexed by time.Weekday (0=Sunday .. 6=Saturday).
var weekdayLabels = [...][7]string{
	localeJapanese: {"日", "月", "火", "水", "木", "金", "土"},
	localeEnglish:  {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

func (l locale) kindLabel(k Kind) string {
	if k <= 0 || int(k) >= len(kindIdents) {
		return ""
	}
	return kindLabels[l][k]
}

func (l locale) weekdayLabel(wd time.Weekday) string {
	return weekdayLabels[l][wd]
}
