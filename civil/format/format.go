// Package format implements the text codec for civil date/time values:
// a strict single-pass ISO 8601 / RFC 3339 parser, the canonical
// fixed-width renderers, and a bracketed-placeholder pattern
// mini-language for custom parsing and formatting.
//
// The codec deals purely in textual shape. It extracts raw field values
// into a Components record and renders Components back to text; range
// validation of the extracted fields belongs to the civil package, which
// owns the calendar rules.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat wraps errors returned by the format package.
var ErrFormat = errors.New("format")

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute

	// microDigits is the width of the microsecond field.
	microDigits = 6
)

// Components is the raw field set extracted by a parse or consumed by a
// render. Fields carry whatever the text said; they have not been
// checked against the calendar.
type Components struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
	// OffsetSeconds is the signed UTC offset extracted from the text.
	OffsetSeconds int
}

// defaultComponents is the starting point for pattern parses: midnight,
// January 1, 1970, UTC. A pattern that omits a field leaves its default.
func defaultComponents() Components {
	return Components{Year: 1970, Month: 1, Day: 1}
}

// ParseISO parses the canonical timestamp grammar
//
//	YYYY-MM-DDTHH:MM:SS[.ffffff](Z|±HH:MM)
//
// in a single pass. Anything outside the grammar, including trailing
// input, aborts with an error wrapping ErrFormat; no partial result is
// returned. The extracted fields are not range-checked against the
// calendar here.
func ParseISO(src string) (Components, error) {
	s := newScanner(src)
	c, err := s.body()
	if err != nil {
		return Components{}, err
	}
	if s.accept('.') {
		if c.Microsecond, err = s.fraction(); err != nil {
			return Components{}, err
		}
	}
	if c.OffsetSeconds, err = s.offset(); err != nil {
		return Components{}, err
	}
	if err := s.end(); err != nil {
		return Components{}, err
	}
	return c, nil
}

// ParseDate parses the date-only grammar YYYY-MM-DD in a single pass.
// The time fields of the result are midnight UTC.
func ParseDate(src string) (Components, error) {
	s := newScanner(src)
	var c Components
	var err error
	if c.Year, c.Month, c.Day, err = s.date(); err != nil {
		return Components{}, err
	}
	if err := s.end(); err != nil {
		return Components{}, err
	}
	return c, nil
}

// ParseOffset parses a standalone offset token: literal "Z" or a signed
// "±HH:MM" within ±23:59. Returns the signed displacement in seconds.
func ParseOffset(src string) (int, error) {
	s := newScanner(src)
	seconds, err := s.offset()
	if err != nil {
		return 0, err
	}
	if err := s.end(); err != nil {
		return 0, err
	}
	return seconds, nil
}

// RFC3339 renders c in the canonical fixed-width RFC 3339 form. The
// fractional part appears, six digits wide, only when the microsecond
// field is nonzero. The offset suffix is "Z" only when the offset is
// exactly zero, otherwise signed "±HH:MM".
func RFC3339(c Components) string {
	var b strings.Builder
	b.Grow(len("-YYYY-MM-DDTHH:MM:SS.ffffff+HH:MM"))
	writeBody(&b, c)
	if c.Microsecond != 0 {
		fmt.Fprintf(&b, ".%0*d", microDigits, c.Microsecond)
	}
	writeOffset(&b, c.OffsetSeconds)
	return b.String()
}

// ISO8601 renders the timestamp body YYYY-MM-DDTHH:MM:SS without the
// offset suffix.
func ISO8601(c Components) string {
	var b strings.Builder
	b.Grow(len("-YYYY-MM-DDTHH:MM:SS"))
	writeBody(&b, c)
	return b.String()
}

func writeBody(b *strings.Builder, c Components) {
	writeYear(b, c.Year)
	fmt.Fprintf(b, "-%02d-%02dT%02d:%02d:%02d", c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// writeYear zero-pads the year to four digits with the sign, if any, in
// front of the padding: year -43 renders as "-0043".
func writeYear(b *strings.Builder, year int) {
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	fmt.Fprintf(b, "%04d", year)
}

// writeOffset renders seconds as "Z" when zero, otherwise "±HH:MM".
func writeOffset(b *strings.Builder, seconds int) {
	if seconds == 0 {
		b.WriteByte('Z')
		return
	}
	sign := byte('+')
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	b.WriteByte(sign)
	fmt.Fprintf(b, "%02d:%02d", seconds/secondsPerHour, (seconds%secondsPerHour)/secondsPerMinute)
}

// scanner is a single-pass, non-resumable cursor over the input. Every
// method either consumes exactly what the grammar requires or reports an
// error; there is no backtracking.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// errAt reports a malformed token at the current position.
func (s *scanner) errAt(what string) error {
	return fmt.Errorf("%w: expected %s at position %d in %q", ErrFormat, what, s.pos, s.src)
}

// accept consumes c if it is the next byte and reports whether it did.
func (s *scanner) accept(c byte) bool {
	if s.pos < len(s.src) && s.src[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// expect consumes c or fails.
func (s *scanner) expect(c byte) error {
	if !s.accept(c) {
		return s.errAt(fmt.Sprintf("%q", string(c)))
	}
	return nil
}

// digits consumes exactly n decimal digits and returns their value.
func (s *scanner) digits(n int) (int, error) {
	if s.pos+n > len(s.src) {
		return 0, s.errAt(fmt.Sprintf("%d digits", n))
	}
	value := 0
	for i := 0; i < n; i++ {
		c := s.src[s.pos+i]
		if c < '0' || c > '9' {
			return 0, s.errAt(fmt.Sprintf("%d digits", n))
		}
		value = value*10 + int(c-'0')
	}
	s.pos += n
	return value, nil
}

// year consumes an optional leading minus sign and four digits. The sign
// extension beyond plain ISO 8601 keeps formatting and parsing of
// astronomical years symmetric.
func (s *scanner) year() (int, error) {
	negative := s.accept('-')
	value, err := s.digits(4)
	if err != nil {
		return 0, err
	}
	if negative {
		value = -value
	}
	return value, nil
}

// date consumes YYYY-MM-DD.
func (s *scanner) date() (year, month, day int, err error) {
	if year, err = s.year(); err != nil {
		return 0, 0, 0, err
	}
	if err = s.expect('-'); err != nil {
		return 0, 0, 0, err
	}
	if month, err = s.digits(2); err != nil {
		return 0, 0, 0, err
	}
	if err = s.expect('-'); err != nil {
		return 0, 0, 0, err
	}
	if day, err = s.digits(2); err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}

// body consumes YYYY-MM-DDTHH:MM:SS.
func (s *scanner) body() (Components, error) {
	var c Components
	var err error
	if c.Year, c.Month, c.Day, err = s.date(); err != nil {
		return Components{}, err
	}
	if err = s.expect('T'); err != nil {
		return Components{}, err
	}
	if c.Hour, c.Minute, c.Second, err = s.clock(); err != nil {
		return Components{}, err
	}
	return c, nil
}

// clock consumes HH:MM:SS.
func (s *scanner) clock() (hour, minute, second int, err error) {
	if hour, err = s.digits(2); err != nil {
		return 0, 0, 0, err
	}
	if err = s.expect(':'); err != nil {
		return 0, 0, 0, err
	}
	if minute, err = s.digits(2); err != nil {
		return 0, 0, 0, err
	}
	if err = s.expect(':'); err != nil {
		return 0, 0, 0, err
	}
	if second, err = s.digits(2); err != nil {
		return 0, 0, 0, err
	}
	return hour, minute, second, nil
}

// fraction consumes one to six fractional digits following the decimal
// point and scales the value to microseconds.
func (s *scanner) fraction() (int, error) {
	start := s.pos
	value := 0
	for s.pos < len(s.src) && s.pos-start < microDigits {
		c := s.src[s.pos]
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + int(c-'0')
		s.pos++
	}
	n := s.pos - start
	if n == 0 {
		return 0, s.errAt("fractional digits")
	}
	for ; n < microDigits; n++ {
		value *= 10
	}
	return value, nil
}

// offset consumes the offset suffix: literal Z or a signed HH:MM with
// hours at most 23 and minutes at most 59.
func (s *scanner) offset() (int, error) {
	if s.accept('Z') {
		return 0, nil
	}
	sign := 0
	switch {
	case s.accept('+'):
		sign = 1
	case s.accept('-'):
		sign = -1
	default:
		return 0, s.errAt(`"Z" or signed offset`)
	}
	hours, err := s.digits(2)
	if err != nil {
		return 0, err
	}
	if err := s.expect(':'); err != nil {
		return 0, err
	}
	minutes, err := s.digits(2)
	if err != nil {
		return 0, err
	}
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf(
			"%w: offset %02d:%02d out of range ±23:59 in %q",
			ErrFormat, hours, minutes, s.src,
		)
	}
	return sign * (hours*secondsPerHour + minutes*secondsPerMinute), nil
}

// end fails unless the whole input has been consumed.
func (s *scanner) end() error {
	if s.pos != len(s.src) {
		return s.errAt("end of input")
	}
	return nil
}
