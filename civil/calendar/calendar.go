// Package calendar implements proleptic Gregorian calendar arithmetic:
// the leap-year rule, month lengths, ordinal days, ISO 8601 week
// numbering, weekday computation, and conversion between calendar dates
// and a continuous day count.
//
// Every function is a pure computation over integers. Dates outside the
// supported year range (MinYear through MaxYear) are the caller's
// responsibility to reject; the conversions themselves are total over
// that range.
package calendar

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrCalendar wraps errors returned by the calendar package.
var ErrCalendar = errors.New("calendar")

// MinYear and MaxYear bound the supported year range. Astronomical
// numbering applies below year 1 (year 0 is 1 BCE).
const (
	MinYear = -9999
	MaxYear = 9999
)

// epochShift aligns the day count so that day zero is 1970-01-01.
const epochShift = 719468

// daysPerEra is the number of days in one 400-year Gregorian cycle.
const daysPerEra = 146097

// daysBefore[m-1] counts the days in a non-leap year before month m.
//
//nolint:gochecknoglobals
var daysBefore = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by
// four and either not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year: 28-31, with February adjusted for leap years. The month must be
// valid; DaysInMonth returns 0 for an invalid month rather than guessing.
func DaysInMonth(year int, m Month) int {
	switch m {
	case January, March, May, July, August, October, December:
		return 31
	case April, June, September, November:
		return 30
	case February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Ordinal returns the 1-based day of the year for the given date: 1 for
// January 1 through 365 or 366 for December 31.
func Ordinal(year int, m Month, day int) int {
	ordinal := daysBefore[m-1] + day
	if m > February && IsLeapYear(year) {
		ordinal++
	}
	return ordinal
}

// DaysFromCivil converts a calendar date to the number of days since
// 1970-01-01. The conversion is exact over the full supported range, so
// adding N to the result and converting back with CivilFromDays is
// day-precise arithmetic immune to month-length variation.
func DaysFromCivil(year int, m Month, day int) int64 {
	y, mm := int64(year), int64(m)
	if mm <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	var doy int64      // [0, 365]
	if mm > 2 {
		doy = (153*(mm-3)+2)/5 + int64(day) - 1
	} else {
		doy = (153*(mm+9)+2)/5 + int64(day) - 1
	}
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPerEra + doe - epochShift
}

// CivilFromDays is the inverse of DaysFromCivil, converting a count of
// days since 1970-01-01 back to a calendar date.
func CivilFromDays(days int64) (year int, m Month, day int) {
	z := days + epochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra                              // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11], March = 0
	d := doy - (153*mp+2)/5 + 1              // [1, 31]
	mm := mp + 3
	if mp >= 10 {
		mm = mp - 9
	}
	if mm <= 2 {
		y++
	}
	return int(y), Month(mm), int(d)
}

// DayOfWeek returns the weekday of the given date. 1970-01-01 was a
// Thursday; everything else follows from the day count modulo seven.
func DayOfWeek(year int, m Month, day int) Weekday {
	return Weekday(floorMod(DaysFromCivil(year, m, day)+3, 7) + 1)
}

// ISOWeek returns the ISO 8601 week-numbering year and week for the
// given date. Week 1 is the week containing the year's first Thursday,
// so dates in late December can fall in week 1 of the following year and
// dates in early January in week 52 or 53 of the previous one.
func ISOWeek(year int, m Month, day int) (isoYear, week int) {
	wd := int(DayOfWeek(year, m, day))
	week = (Ordinal(year, m, day) - wd + 10) / 7
	switch {
	case week < 1:
		isoYear = year - 1
		week = weeksInYear(isoYear)
	case week > weeksInYear(year):
		isoYear = year + 1
		week = 1
	default:
		isoYear = year
	}
	return isoYear, week
}

// weeksInYear returns 52 or 53, the number of ISO weeks in year. A year
// has 53 weeks when it starts or ends on a Thursday.
func weeksInYear(year int) int {
	p := func(y int) int {
		return floorMod(y+floorDiv(y, 4)-floorDiv(y, 100)+floorDiv(y, 400), 7)
	}
	if p(year) == 4 || p(year-1) == 3 {
		return 53
	}
	return 52
}

// AddMonths advances the date by n months (negative n subtracts),
// carrying into the year as needed and clamping the day to the last day
// of the target month when the original day would not exist there.
// January 31 plus one month is the last day of February, never a
// rollover into March. The clamping is deliberate policy, not error
// recovery.
func AddMonths(year int, m Month, day, n int) (int, Month, int) {
	total := year*12 + int(m) - 1 + n
	y := floorDiv(total, 12)
	month := Month(floorMod(total, 12) + 1)
	if last := DaysInMonth(y, month); day > last {
		day = last
	}
	return y, month, day
}

// AddYears advances the date by n years (negative n subtracts), clamping
// February 29 to February 28 when the target year is not a leap year.
func AddYears(year int, m Month, day, n int) (int, Month, int) {
	y := year + n
	if m == February && day == 29 && !IsLeapYear(y) {
		day = 28
	}
	return y, m, day
}

// floorDiv returns the quotient of a and b rounded toward negative
// infinity, unlike Go's native truncation toward zero.
func floorDiv[T constraints.Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv, always in [0, b) for
// positive b.
func floorMod[T constraints.Integer](a, b T) T {
	return a - floorDiv(a, b)*b
}
