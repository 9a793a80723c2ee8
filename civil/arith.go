package civil

import (
	"fmt"
	"math"
	"time"

	"github.com/theory/civiltime/civil/calendar"
)

// AddDays returns d moved by days, which may be negative. Day
// arithmetic is exact: it runs over the continuous day count, so month
// lengths and leap years never distort the step. Fails with an error
// wrapping ErrRange when the result leaves the supported calendar
// range.
func (d DateTime) AddDays(days int) (DateTime, error) {
	total := calendar.DaysFromCivil(d.year, d.month, d.day) + int64(days)
	year, month, day := calendar.CivilFromDays(total)
	return d.withDate(year, month, day)
}

// NextDay returns the value exactly one day later.
func (d DateTime) NextDay() (DateTime, error) {
	return d.AddDays(1)
}

// PrevDay returns the value exactly one day earlier.
func (d DateTime) PrevDay() (DateTime, error) {
	return d.AddDays(-1)
}

// AddMonths returns d moved by months, which may be negative. The month
// advances with carry into the year, and the day clamps to the last day
// of the target month when the original day would not exist there:
// January 31 plus one month is the last day of February. The clamp is
// policy, not an error. Fails with an error wrapping ErrRange when the
// result leaves the supported calendar range.
func (d DateTime) AddMonths(months int) (DateTime, error) {
	year, month, day := calendar.AddMonths(d.year, d.month, d.day, months)
	return d.withDate(year, month, day)
}

// SubMonths is AddMonths with the sign reversed.
func (d DateTime) SubMonths(months int) (DateTime, error) {
	return d.AddMonths(-months)
}

// AddYears returns d moved by years, which may be negative. February 29
// clamps to February 28 when the target year is not a leap year. Fails
// with an error wrapping ErrRange when the result leaves the supported
// calendar range.
func (d DateTime) AddYears(years int) (DateTime, error) {
	year, month, day := calendar.AddYears(d.year, d.month, d.day, years)
	return d.withDate(year, month, day)
}

// SubYears is AddYears with the sign reversed.
func (d DateTime) SubYears(years int) (DateTime, error) {
	return d.AddYears(-years)
}

// withDate rebuilds d around a date produced by calendar arithmetic,
// enforcing the year range. The time fields and offset carry over
// unchanged.
func (d DateTime) withDate(year int, month calendar.Month, day int) (DateTime, error) {
	if year < calendar.MinYear || year > calendar.MaxYear {
		return DateTime{}, fmt.Errorf(
			"%w: year %d outside %d-%d", ErrRange, year, calendar.MinYear, calendar.MaxYear,
		)
	}
	next := d
	next.year, next.month, next.day = year, month, day
	return next, nil
}

// Since returns the signed elapsed time from other to d: positive when
// d is later. Differences beyond the ±292-year span of time.Duration
// clamp to the extremes.
func (d DateTime) Since(other DateTime) time.Duration {
	micros := d.instantMicros() - other.instantMicros()
	if micros > math.MaxInt64/int64(time.Microsecond) {
		return time.Duration(math.MaxInt64)
	}
	if micros < math.MinInt64/int64(time.Microsecond) {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(micros) * time.Microsecond
}

// Compare orders d and other by their underlying instants, normalized
// to a common reference: -1 when d is earlier, +1 when later, 0 when
// they denote the same instant, regardless of offset.
func (d DateTime) Compare(other DateTime) int {
	a, b := d.instantMicros(), other.instantMicros()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d's instant precedes other's.
func (d DateTime) Before(other DateTime) bool { return d.Compare(other) < 0 }

// After reports whether d's instant follows other's.
func (d DateTime) After(other DateTime) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other denote the same instant. Values
// with different offsets can be Equal; use == only when field-for-field
// identity is wanted.
func (d DateTime) Equal(other DateTime) bool { return d.Compare(other) == 0 }

// Within reports whether d falls inside the inclusive range from start
// through end. Fails with an error wrapping ErrRange when start is
// after end; reversed bounds are rejected rather than treated as an
// empty range.
func (d DateTime) Within(start, end DateTime) (bool, error) {
	if start.After(end) {
		return false, fmt.Errorf("%w: start %s after end %s", ErrRange, start, end)
	}
	return !d.Before(start) && !d.After(end), nil
}

// StartOfWeek returns the Monday of d's week, keeping the time of day.
func (d DateTime) StartOfWeek() (DateTime, error) {
	return d.AddDays(-(int(d.Weekday()) - 1))
}

// EndOfWeek returns the Sunday of d's week, keeping the time of day.
func (d DateTime) EndOfWeek() (DateTime, error) {
	return d.AddDays(int(calendar.Sunday) - int(d.Weekday()))
}

// StartOfMonth returns the first day of d's month, keeping the time of
// day.
func (d DateTime) StartOfMonth() (DateTime, error) {
	return d.SetDate(d.year, d.month, 1)
}

// EndOfMonth returns the last day of d's month, resolved through the
// calendar rather than a fixed 30/31 guess, keeping the time of day.
func (d DateTime) EndOfMonth() (DateTime, error) {
	return d.SetDate(d.year, d.month, calendar.DaysInMonth(d.year, d.month))
}

// StartOfYear returns January 1 of d's year, keeping the time of day.
func (d DateTime) StartOfYear() (DateTime, error) {
	return d.SetDate(d.year, calendar.January, 1)
}

// EndOfYear returns December 31 of d's year, keeping the time of day.
func (d DateTime) EndOfYear() (DateTime, error) {
	return d.SetDate(d.year, calendar.December, 31)
}
