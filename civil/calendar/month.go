package calendar

import "fmt"

// Month identifies a month of the Gregorian year, January = 1.
type Month int

// The twelve months.
const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

//nolint:gochecknoglobals
var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Valid reports whether m lies in January through December.
func (m Month) Valid() bool { return m >= January && m <= December }

// String returns the English name of the month, or a diagnostic form for
// values outside January through December.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// MonthOf converts a 1-based month number to a Month. Returns an error
// wrapping ErrCalendar when n is outside 1 through 12.
func MonthOf(n int) (Month, error) {
	m := Month(n)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: month %d out of range 1-12", ErrCalendar, n)
	}
	return m, nil
}

// ParseMonth converts an English month name to a Month. Matching is
// case-sensitive, as with zone abbreviations. Returns an error wrapping
// ErrCalendar for unrecognized names.
func ParseMonth(name string) (Month, error) {
	for i, n := range monthNames {
		if n == name {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrCalendar, name)
}
