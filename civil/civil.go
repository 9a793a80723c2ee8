// Package civil provides an immutable civil date/time value: a calendar
// date, a time of day with microsecond precision, and a fixed UTC
// offset. It supports construction from components, text, or the
// current instant, calendar-aware arithmetic, period boundaries, ISO
// week and ordinal queries, and formatting to ISO 8601, RFC 3339, or a
// custom placeholder pattern.
//
// Time zones are fixed offsets resolved once at construction by the
// [tz] subpackage; no daylight saving rules are applied. Every
// operation that looks like a mutation returns a new value, so DateTime
// values are safe to share between goroutines without locking.
package civil

import (
	"errors"
	"fmt"
	"time"

	"github.com/theory/civiltime/civil/calendar"
	"github.com/theory/civiltime/civil/format"
	"github.com/theory/civiltime/civil/tz"
)

var (
	// ErrField wraps errors for field values outside their valid range.
	ErrField = errors.New("field")

	// ErrRange wraps errors for operations whose result would fall
	// outside the representable calendar range, and for inverted range
	// bounds passed to [DateTime.Within].
	ErrRange = errors.New("range")
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	microsPerSecond = 1_000_000
	microsPerDay    = int64(secondsPerDay) * microsPerSecond

	maxMicrosecond = microsPerSecond - 1
)

// DateTime is a point in civil time: a proleptic Gregorian calendar
// date, a time of day, and a fixed UTC offset. The zero value is not a
// meaningful date; obtain values through New, Now, Parse, or their
// variants. DateTime is immutable; every arithmetic or setter operation
// returns a new value and never exposes an invalid intermediate state.
type DateTime struct {
	year   int
	month  calendar.Month
	day    int
	hour   int
	minute int
	second int
	micro  int
	offset tz.Offset
}

// Option adjusts the time, microsecond, or offset of a DateTime under
// construction by [New]. The assembled value is validated as a whole
// after all options have applied.
type Option func(*DateTime) error

// AtTime sets the time of day.
func AtTime(hour, minute, second int) Option {
	return func(d *DateTime) error {
		d.hour, d.minute, d.second = hour, minute, second
		return nil
	}
}

// WithMicrosecond sets the microsecond field.
func WithMicrosecond(micro int) Option {
	return func(d *DateTime) error {
		d.micro = micro
		return nil
	}
}

// AtOffset attaches a fixed UTC offset.
func AtOffset(offset tz.Offset) Option {
	return func(d *DateTime) error {
		d.offset = offset
		return nil
	}
}

// InZone attaches the fixed offset of the named zone abbreviation.
// Construction fails with an error wrapping [tz.ErrUnknownZone] when
// the name is not in the resolver's table.
func InZone(name string) Option {
	return func(d *DateTime) error {
		offset, err := tz.Resolve(name)
		if err != nil {
			return err
		}
		d.offset = offset
		return nil
	}
}

// New constructs a DateTime from components: the given calendar date at
// midnight UTC unless options say otherwise. Every field is validated
// before the value is accepted; construction fails with the first
// violated constraint, wrapping ErrField for an invalid field, ErrRange
// for a year outside the supported calendar range, or the option's own
// error for an unresolvable zone.
func New(year int, month calendar.Month, day int, opts ...Option) (DateTime, error) {
	d := DateTime{year: year, month: month, day: day}
	for _, opt := range opts {
		if err := opt(&d); err != nil {
			return DateTime{}, err
		}
	}
	if err := d.validate(); err != nil {
		return DateTime{}, err
	}
	return d, nil
}

// validate checks every primary field against the calendar. Field
// checks run in declaration order so the reported error names the first
// violated constraint.
func (d DateTime) validate() error {
	if d.year < calendar.MinYear || d.year > calendar.MaxYear {
		return fmt.Errorf("%w: year %d outside %d-%d", ErrRange, d.year, calendar.MinYear, calendar.MaxYear)
	}
	if !d.month.Valid() {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrField, int(d.month))
	}
	if last := calendar.DaysInMonth(d.year, d.month); d.day < 1 || d.day > last {
		return fmt.Errorf("%w: day %d out of range 1-%d for %s %d", ErrField, d.day, last, d.month, d.year)
	}
	if d.hour < 0 || d.hour > 23 {
		return fmt.Errorf("%w: hour %d out of range 0-23", ErrField, d.hour)
	}
	if d.minute < 0 || d.minute > 59 {
		return fmt.Errorf("%w: minute %d out of range 0-59", ErrField, d.minute)
	}
	if d.second < 0 || d.second > 59 {
		return fmt.Errorf("%w: second %d out of range 0-59", ErrField, d.second)
	}
	if d.micro < 0 || d.micro > maxMicrosecond {
		return fmt.Errorf("%w: microsecond %d out of range 0-%d", ErrField, d.micro, maxMicrosecond)
	}
	return nil
}

// Now returns the current instant in UTC.
func Now() DateTime {
	return nowAt(tz.UTC)
}

// NowIn returns the current instant expressed in the named zone's fixed
// offset. Fails with an error wrapping [tz.ErrUnknownZone] when the
// abbreviation is unresolvable.
func NowIn(zone string) (DateTime, error) {
	offset, err := tz.Resolve(zone)
	if err != nil {
		return DateTime{}, err
	}
	return nowAt(offset), nil
}

// NowAt returns the current instant expressed at a custom fixed offset
// built from signed hour and minute components. Fails with an error
// wrapping ErrField when the offset lies outside ±23:59.
func NowAt(hours, minutes int) (DateTime, error) {
	offset, err := tz.New(hours, minutes)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %w", ErrField, err)
	}
	return nowAt(offset), nil
}

func nowAt(offset tz.Offset) DateTime {
	t := time.Now()
	micros := t.Unix()*microsPerSecond + int64(t.Nanosecond())/1_000
	return fromInstant(micros, offset)
}

// Refresh returns the current instant expressed at the same offset as
// d. The offset attached at construction is preserved; only the date
// and time fields change.
func (d DateTime) Refresh() DateTime {
	return nowAt(d.offset)
}

// Parse parses src as an ISO 8601 / RFC 3339 timestamp,
// YYYY-MM-DDTHH:MM:SS[.ffffff](Z|±HH:MM), or as a plain YYYY-MM-DD
// date, which yields midnight UTC. The parsed fields are validated
// against the calendar; derived fields such as the weekday, ordinal,
// and ISO week follow from the result.
func Parse(src string) (DateTime, error) {
	c, err := format.ParseISO(src)
	if err != nil {
		date, dateErr := format.ParseDate(src)
		if dateErr != nil {
			// Report the timestamp error: it is the richer grammar.
			return DateTime{}, err
		}
		c = date
	}
	return fromComponents(c)
}

// ParseFormat parses src positionally against a placeholder pattern
// such as "[year]-[month]-[day] [hour]:[minute]:[second]". Fields the
// pattern omits default to midnight, January 1, 1970, UTC. Fails with
// an error wrapping [format.ErrFormat] when src does not match the
// pattern shape, or ErrField when an extracted field is out of range.
func ParseFormat(src, pattern string) (DateTime, error) {
	c, err := format.ParsePattern(src, pattern)
	if err != nil {
		return DateTime{}, err
	}
	return fromComponents(c)
}

// fromComponents validates codec output into a DateTime.
func fromComponents(c format.Components) (DateTime, error) {
	offset, err := tz.FromSeconds(c.OffsetSeconds)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %w", ErrField, err)
	}
	d := DateTime{
		year:   c.Year,
		month:  calendar.Month(c.Month),
		day:    c.Day,
		hour:   c.Hour,
		minute: c.Minute,
		second: c.Second,
		micro:  c.Microsecond,
		offset: offset,
	}
	if err := d.validate(); err != nil {
		return DateTime{}, err
	}
	return d, nil
}

// components projects d into the codec's raw field record.
func (d DateTime) components() format.Components {
	return format.Components{
		Year:          d.year,
		Month:         int(d.month),
		Day:           d.day,
		Hour:          d.hour,
		Minute:        d.minute,
		Second:        d.second,
		Microsecond:   d.micro,
		OffsetSeconds: d.offset.Seconds(),
	}
}

// Year returns the year, in astronomical numbering.
func (d DateTime) Year() int { return d.year }

// Month returns the month.
func (d DateTime) Month() calendar.Month { return d.month }

// Day returns the day of the month.
func (d DateTime) Day() int { return d.day }

// Hour returns the hour, 0 through 23.
func (d DateTime) Hour() int { return d.hour }

// Minute returns the minute, 0 through 59.
func (d DateTime) Minute() int { return d.minute }

// Second returns the second, 0 through 59.
func (d DateTime) Second() int { return d.second }

// Microsecond returns the microsecond, 0 through 999999.
func (d DateTime) Microsecond() int { return d.micro }

// Offset returns the fixed UTC offset attached to d.
func (d DateTime) Offset() tz.Offset { return d.offset }

// Weekday returns the day of the week, recomputed from the date.
func (d DateTime) Weekday() calendar.Weekday {
	return calendar.DayOfWeek(d.year, d.month, d.day)
}

// Ordinal returns the 1-based day of the year, recomputed from the
// date.
func (d DateTime) Ordinal() int {
	return calendar.Ordinal(d.year, d.month, d.day)
}

// ISOWeek returns the ISO 8601 week-numbering year and week number. The
// week year can differ from Year around January 1: 2022-01-01 falls in
// week 52 of 2021.
func (d DateTime) ISOWeek() (year, week int) {
	return calendar.ISOWeek(d.year, d.month, d.day)
}

// UnixTimestamp returns the number of seconds between d's instant and
// 1970-01-01T00:00:00Z, normalizing away the attached offset.
func (d DateTime) UnixTimestamp() int64 {
	return d.unixSeconds()
}

// ConvertTo re-expresses the same instant under the named zone's fixed
// offset: the wall-clock fields change, the underlying instant does
// not. Fails with an error wrapping [tz.ErrUnknownZone] when the
// abbreviation is unresolvable.
func (d DateTime) ConvertTo(zone string) (DateTime, error) {
	offset, err := tz.Resolve(zone)
	if err != nil {
		return DateTime{}, err
	}
	return d.ConvertAt(offset), nil
}

// ConvertAt re-expresses the same instant at the given fixed offset.
func (d DateTime) ConvertAt(offset tz.Offset) DateTime {
	return fromInstant(d.instantMicros(), offset)
}

// SetDate replaces the date portion as a unit, keeping the time of day
// and offset. The replacement is validated whole before the new value
// is produced.
func (d DateTime) SetDate(year int, month calendar.Month, day int) (DateTime, error) {
	next := d
	next.year, next.month, next.day = year, month, day
	if err := next.validate(); err != nil {
		return DateTime{}, err
	}
	return next, nil
}

// SetTime replaces the time portion as a unit, keeping the date and
// offset and resetting the microsecond to zero. The replacement is
// validated whole before the new value is produced.
func (d DateTime) SetTime(hour, minute, second int) (DateTime, error) {
	next := d
	next.hour, next.minute, next.second, next.micro = hour, minute, second, 0
	if err := next.validate(); err != nil {
		return DateTime{}, err
	}
	return next, nil
}

// Format renders d through a placeholder pattern, substituting each
// placeholder with the zero-padded field value. Fails with an error
// wrapping [format.ErrFormat] when the pattern does not lex.
func (d DateTime) Format(pattern string) (string, error) {
	return format.FormatPattern(d.components(), pattern)
}

// FormatIn converts d to the named zone and formats the result through
// pattern in one step.
func (d DateTime) FormatIn(zone, pattern string) (string, error) {
	converted, err := d.ConvertTo(zone)
	if err != nil {
		return "", err
	}
	return converted.Format(pattern)
}

// RFC3339 renders d in the canonical fixed-width RFC 3339 form. The
// offset suffix is "Z" only when the offset is exactly zero, otherwise
// signed "±HH:MM". The six-digit fractional part appears only when the
// microsecond field is nonzero.
func (d DateTime) RFC3339() string {
	return format.RFC3339(d.components())
}

// ISO8601 renders the timestamp body YYYY-MM-DDTHH:MM:SS without the
// offset suffix.
func (d DateTime) ISO8601() string {
	return format.ISO8601(d.components())
}

// String returns the RFC 3339 representation of d.
func (d DateTime) String() string {
	return d.RFC3339()
}

// unixSeconds returns seconds since the Unix epoch, normalized to UTC.
func (d DateTime) unixSeconds() int64 {
	days := calendar.DaysFromCivil(d.year, d.month, d.day)
	clock := int64(d.hour)*secondsPerHour + int64(d.minute)*secondsPerMinute + int64(d.second)
	return days*secondsPerDay + clock - int64(d.offset.Seconds())
}

// instantMicros returns microseconds since the Unix epoch, normalized
// to UTC. The supported year range keeps this well within int64.
func (d DateTime) instantMicros() int64 {
	return d.unixSeconds()*microsPerSecond + int64(d.micro)
}

// fromInstant expresses the instant micros (microseconds since the Unix
// epoch, UTC) as wall-clock fields at the given offset.
func fromInstant(micros int64, offset tz.Offset) DateTime {
	local := micros + int64(offset.Seconds())*microsPerSecond
	days := floorDiv64(local, microsPerDay)
	rem := local - days*microsPerDay
	year, month, day := calendar.CivilFromDays(days)
	secs := rem / microsPerSecond
	return DateTime{
		year:   year,
		month:  month,
		day:    day,
		hour:   int(secs / secondsPerHour),
		minute: int(secs % secondsPerHour / secondsPerMinute),
		second: int(secs % secondsPerMinute),
		micro:  int(rem % microsPerSecond),
		offset: offset,
	}
}

// floorDiv64 rounds the quotient toward negative infinity.
func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
