package civil

import (
	"strconv"
	"strings"
)

// The validators below are pure predicates over text: each decides
// whether a token is a well-formed value for a single field. They check
// fixed numeric ranges only and never consult calendar context, so
// IsValidDay("31") is true even though no 30-day month has a day 31;
// full construction through New performs the calendar-aware check.
// Malformed input is simply invalid, never an error.

// parseDigits parses a token of one or more decimal digits, with no
// sign, space, or other decoration.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return value, true
}

// inRange reports whether the token is a digit string in [lo, hi].
func inRange(s string, lo, hi int) bool {
	value, ok := parseDigits(s)
	return ok && value >= lo && value <= hi
}

// IsValidDay reports whether the token is a day of the month, 1-31.
func IsValidDay(s string) bool { return inRange(s, 1, 31) }

// IsValidHour reports whether the token is an hour, 0-23.
func IsValidHour(s string) bool { return inRange(s, 0, 23) }

// IsValidMinute reports whether the token is a minute, 0-59.
func IsValidMinute(s string) bool { return inRange(s, 0, 59) }

// IsValidSecond reports whether the token is a second, 0-59.
func IsValidSecond(s string) bool { return inRange(s, 0, 59) }

// IsValidMonth reports whether the token is a month number, 1-12.
func IsValidMonth(s string) bool { return inRange(s, 1, 12) }

// IsValidMicrosecond reports whether the token is a microsecond,
// 0-999999.
func IsValidMicrosecond(s string) bool { return inRange(s, 0, maxMicrosecond) }

// IsValidOrdinal reports whether the token is an ordinal day of the
// year, 1-366. 366 is accepted without a leap-year context, matching
// the range-only contract of these validators.
func IsValidOrdinal(s string) bool { return inRange(s, 1, 366) }

// IsValidISOWeek reports whether the token is an ISO week number, 1-53.
func IsValidISOWeek(s string) bool { return inRange(s, 1, 53) }

// IsValidYear reports whether the token is a signed integer year.
func IsValidYear(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// IsValidTime reports whether the token is a time of day in strict
// HH:MM:SS form: two digits per component, leading zeros required, each
// component range-checked.
func IsValidTime(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if len(part) != 2 {
			return false
		}
	}
	return IsValidHour(parts[0]) && IsValidMinute(parts[1]) && IsValidSecond(parts[2])
}

// IsValidISO8601 reports whether the token parses as a full ISO 8601
// timestamp or a plain date. Unlike the single-field validators this
// check is calendar-aware: "2024-13-01T00:00:00Z" and day 31 of a
// 30-day month are both invalid.
func IsValidISO8601(s string) bool {
	_, err := Parse(s)
	return err == nil
}
