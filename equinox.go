package jpholiday

import "math"

// Equinox coefficients from the 新こよみ便利帳 approximation. The second
// value of each pair applies after 2099.
const (
	equinoxEraEnd = 2099

	vernalBase       = 20.8431
	vernalBaseLate   = 21.851
	autumnalBase     = 23.2488
	autumnalBaseLate = 24.2488

	equinoxDrift = 0.242194
)

// VernalEquinox returns the day of March on which the vernal equinox
// (春分の日) falls in the given year.
//
// The result is an approximation that is reliable for roughly 1980-2150.
// Official dates are announced in the government gazette every February;
// the gazette wins wherever the two disagree.
func VernalEquinox(year int) int {
	if year <= equinoxEraEnd {
		return equinoxDay(vernalBase, year)
	}
	return equinoxDay(vernalBaseLate, year)
}

// AutumnalEquinox returns the day of September on which the autumnal
// equinox (秋分の日) falls in the given year. The same accuracy caveats as
// [VernalEquinox] apply.
func AutumnalEquinox(year int) int {
	if year <= equinoxEraEnd {
		return equinoxDay(autumnalBase, year)
	}
	return equinoxDay(autumnalBaseLate, year)
}

// equinoxDay evaluates floor(base + drift*(y-1980) - floor((y-1980)/4)).
// Both floors round toward negative infinity so years before 1980 follow
// the same formula.
func equinoxDay(base float64, year int) int {
	n := float64(year - 1980)
	return int(math.Floor(base + equinoxDrift*n - math.Floor(n/4)))
}
