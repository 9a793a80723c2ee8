package civil

import "github.com/theory/civiltime/civil/calendar"

// Convenience shorthand for common call patterns. These are thin free
// functions layered on the public DateTime API; nothing here reaches
// into the engine.

// MustParse is like Parse but panics on failure. Mostly provided for
// use in documentation examples and static initializers.
func MustParse(src string) DateTime {
	d, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns midnight today, UTC.
func Today() DateTime {
	now := Now()
	now.hour, now.minute, now.second, now.micro = 0, 0, 0, 0
	return now
}

// DaysBetween returns the number of whole calendar days from a's date
// to b's date: positive when b is later. The time-of-day and offset
// fields do not contribute.
func DaysBetween(a, b DateTime) int64 {
	return calendar.DaysFromCivil(b.year, b.month, b.day) -
		calendar.DaysFromCivil(a.year, a.month, a.day)
}

// Min returns the earlier of a and b by instant; a when equal.
func Min(a, b DateTime) DateTime {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b by instant; a when equal.
func Max(a, b DateTime) DateTime {
	if b.After(a) {
		return b
	}
	return a
}
