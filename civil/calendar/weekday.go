package calendar

import "fmt"

// Weekday identifies a day of the week, Monday = 1 through Sunday = 7
// per ISO 8601 numbering.
type Weekday int

// The seven weekdays.
const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

//nolint:gochecknoglobals
var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Valid reports whether w lies in Monday through Sunday.
func (w Weekday) Valid() bool { return w >= Monday && w <= Sunday }

// String returns the English name of the weekday, or a diagnostic form
// for values outside Monday through Sunday.
func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// WeekdayOf converts an ISO weekday number to a Weekday. Returns an
// error wrapping ErrCalendar when n is outside 1 through 7.
func WeekdayOf(n int) (Weekday, error) {
	w := Weekday(n)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: weekday %d out of range 1-7", ErrCalendar, n)
	}
	return w, nil
}

// ParseWeekday converts an English weekday name to a Weekday. Returns an
// error wrapping ErrCalendar for unrecognized names.
func ParseWeekday(name string) (Weekday, error) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrCalendar, name)
}
