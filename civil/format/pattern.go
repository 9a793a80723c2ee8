package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// field identifies a placeholder in a pattern.
type field int

const (
	fieldYear field = iota
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
	fieldMicrosecond
	fieldOffset
)

// fields maps placeholder names to fields. Names follow identifier
// syntax; anything else inside brackets is a lex error.
//
//nolint:gochecknoglobals
var fields = map[string]field{
	"year":        fieldYear,
	"month":       fieldMonth,
	"day":         fieldDay,
	"hour":        fieldHour,
	"minute":      fieldMinute,
	"second":      fieldSecond,
	"microsecond": fieldMicrosecond,
	"offset":      fieldOffset,
}

// token is one element of a lexed pattern: either a literal run of text
// to be matched or emitted verbatim, or a field placeholder.
type token struct {
	literal string
	field   field
	isField bool
}

// lexPattern splits pattern into literal and placeholder tokens. A
// placeholder is a bracketed identifier such as "[year]"; its name must
// follow Unicode identifier syntax (XID_Start then XID_Continue) and
// name a known field. "[[" produces a literal left bracket.
func lexPattern(pattern string) ([]token, error) {
	var tokens []token
	var literal strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c != '[' {
			literal.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '[' {
			literal.WriteByte('[')
			i += 2
			continue
		}
		if literal.Len() > 0 {
			tokens = append(tokens, token{literal: literal.String()})
			literal.Reset()
		}
		name, next, err := lexPlaceholder(pattern, i+1)
		if err != nil {
			return nil, err
		}
		f, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown placeholder %q in pattern %q", ErrFormat, name, pattern)
		}
		tokens = append(tokens, token{field: f, isField: true})
		i = next
	}
	if literal.Len() > 0 {
		tokens = append(tokens, token{literal: literal.String()})
	}
	return tokens, nil
}

// lexPlaceholder reads the identifier and closing bracket starting at
// start, returning the name and the position after the bracket.
func lexPlaceholder(pattern string, start int) (string, int, error) {
	pos := start
	for pos < len(pattern) && pattern[pos] != ']' {
		r, size := utf8.DecodeRuneInString(pattern[pos:])
		valid := xid.Continue(r)
		if pos == start {
			valid = xid.Start(r)
		}
		if !valid {
			return "", 0, fmt.Errorf(
				"%w: invalid placeholder character %q at position %d in pattern %q",
				ErrFormat, r, pos, pattern,
			)
		}
		pos += size
	}
	if pos == len(pattern) {
		return "", 0, fmt.Errorf("%w: unterminated placeholder in pattern %q", ErrFormat, pattern)
	}
	if pos == start {
		return "", 0, fmt.Errorf("%w: empty placeholder in pattern %q", ErrFormat, pattern)
	}
	return pattern[start:pos], pos + 1, nil
}

// FormatPattern renders c through pattern, substituting each placeholder
// with the zero-padded field value. Returns an error wrapping ErrFormat
// if the pattern does not lex.
func FormatPattern(c Components, pattern string) (string, error) {
	tokens, err := lexPattern(pattern)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, tok := range tokens {
		if !tok.isField {
			b.WriteString(tok.literal)
			continue
		}
		switch tok.field {
		case fieldYear:
			writeYear(&b, c.Year)
		case fieldMonth:
			fmt.Fprintf(&b, "%02d", c.Month)
		case fieldDay:
			fmt.Fprintf(&b, "%02d", c.Day)
		case fieldHour:
			fmt.Fprintf(&b, "%02d", c.Hour)
		case fieldMinute:
			fmt.Fprintf(&b, "%02d", c.Minute)
		case fieldSecond:
			fmt.Fprintf(&b, "%02d", c.Second)
		case fieldMicrosecond:
			fmt.Fprintf(&b, "%0*d", microDigits, c.Microsecond)
		case fieldOffset:
			writeOffset(&b, c.OffsetSeconds)
		}
	}
	return b.String(), nil
}

// ParsePattern extracts field values from src positionally according to
// pattern. Literal runs must match byte for byte; each placeholder
// consumes its fixed width (four digits for the year, optionally signed;
// six for the microsecond; "Z" or a signed HH:MM for the offset; two
// digits otherwise). Fields the pattern omits default to midnight,
// January 1, 1970, UTC. The scan is single-pass: the first mismatch
// aborts with an error wrapping ErrFormat and no partial result.
func ParsePattern(src, pattern string) (Components, error) {
	tokens, err := lexPattern(pattern)
	if err != nil {
		return Components{}, err
	}
	c := defaultComponents()
	s := newScanner(src)
	for _, tok := range tokens {
		if !tok.isField {
			if err := s.literal(tok.literal); err != nil {
				return Components{}, err
			}
			continue
		}
		var err error
		switch tok.field {
		case fieldYear:
			c.Year, err = s.year()
		case fieldMonth:
			c.Month, err = s.digits(2)
		case fieldDay:
			c.Day, err = s.digits(2)
		case fieldHour:
			c.Hour, err = s.digits(2)
		case fieldMinute:
			c.Minute, err = s.digits(2)
		case fieldSecond:
			c.Second, err = s.digits(2)
		case fieldMicrosecond:
			c.Microsecond, err = s.digits(microDigits)
		case fieldOffset:
			c.OffsetSeconds, err = s.offset()
		}
		if err != nil {
			return Components{}, err
		}
	}
	if err := s.end(); err != nil {
		return Components{}, err
	}
	return c, nil
}

// literal consumes text exactly or fails.
func (s *scanner) literal(text string) error {
	if !strings.HasPrefix(s.src[s.pos:], text) {
		return s.errAt(fmt.Sprintf("%q", text))
	}
	s.pos += len(text)
	return nil
}
