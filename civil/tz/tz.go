// Package tz resolves time zone abbreviations to fixed UTC offsets.
//
// The table of known abbreviations is static and read-only after package
// initialization, so concurrent lookups require no locking. Each
// abbreviation maps to exactly one fixed offset; seasonal variants of a
// zone ("EST" and "EDT", say) are separate entries, and no daylight
// saving transitions are ever applied.
package tz

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrUnknownZone wraps errors for abbreviations absent from the table.
	ErrUnknownZone = errors.New("timezone")

	// ErrOffset wraps errors for offsets outside the representable range.
	ErrOffset = errors.New("offset")
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute

	// maxOffsetSeconds is the magnitude of the largest representable
	// offset, ±23:59.
	maxOffsetSeconds = 23*secondsPerHour + 59*secondsPerMinute
)

// Offset is a fixed displacement from UTC. The zero value is UTC itself.
// Offsets are plain values; a DateTime holds its own copy and no shared
// state exists between values.
type Offset struct {
	seconds int
}

// UTC is the zero offset.
var UTC = Offset{}

// New creates an Offset from signed hour and minute components. Nonzero
// hours and minutes must carry the same sign, and the result must lie
// within ±23:59. Returns ErrOffset-wrapped errors for out-of-range or
// mixed-sign components.
func New(hours, minutes int) (Offset, error) {
	if hours > 23 || hours < -23 {
		return Offset{}, fmt.Errorf("%w: offset hours %d out of range ±23", ErrOffset, hours)
	}
	if minutes > 59 || minutes < -59 {
		return Offset{}, fmt.Errorf("%w: offset minutes %d out of range ±59", ErrOffset, minutes)
	}
	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		return Offset{}, fmt.Errorf("%w: offset components %d and %d differ in sign", ErrOffset, hours, minutes)
	}
	return Offset{seconds: hours*secondsPerHour + minutes*secondsPerMinute}, nil
}

// FromSeconds creates an Offset from a signed displacement in seconds.
// Returns an error if the magnitude exceeds 23:59 or the displacement is
// not a whole number of minutes.
func FromSeconds(seconds int) (Offset, error) {
	if seconds > maxOffsetSeconds || seconds < -maxOffsetSeconds {
		return Offset{}, fmt.Errorf("%w: offset %d seconds out of range ±23:59", ErrOffset, seconds)
	}
	if seconds%secondsPerMinute != 0 {
		return Offset{}, fmt.Errorf("%w: offset %d seconds not a whole minute", ErrOffset, seconds)
	}
	return Offset{seconds: seconds}, nil
}

// Seconds returns the signed displacement from UTC in seconds.
func (o Offset) Seconds() int { return o.seconds }

// Hours returns the signed whole-hour component of the offset.
func (o Offset) Hours() int { return o.seconds / secondsPerHour }

// Minutes returns the signed minute component of the offset, past the
// whole hours.
func (o Offset) Minutes() int { return (o.seconds % secondsPerHour) / secondsPerMinute }

// IsUTC reports whether the offset is exactly zero.
func (o Offset) IsUTC() bool { return o.seconds == 0 }

// String returns the RFC 3339 representation of the offset: "Z" for the
// zero offset, otherwise a signed "±hh:mm".
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	sign := '+'
	secs := o.seconds
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	return fmt.Sprintf("%c%02d:%02d", sign, secs/secondsPerHour, (secs%secondsPerHour)/secondsPerMinute)
}

// mustOffset builds a table entry, panicking on a bad literal. Only used
// during package initialization, where every entry is a constant.
func mustOffset(hours, minutes int) Offset {
	o, err := New(hours, minutes)
	if err != nil {
		panic(err)
	}
	return o
}

// zones maps case-sensitive zone abbreviations to their fixed offsets.
// This is a convenient subset, not an exhaustive database; adding an
// abbreviation is a data change only.
//
//nolint:gochecknoglobals
var zones = map[string]Offset{
	"UTC": {},
	"GMT": {},

	// North America
	"EST": mustOffset(-5, 0),
	"EDT": mustOffset(-4, 0),
	"CST": mustOffset(-6, 0),
	"CDT": mustOffset(-5, 0),
	"MST": mustOffset(-7, 0),
	"MDT": mustOffset(-6, 0),
	"PST": mustOffset(-8, 0),
	"PDT": mustOffset(-7, 0),

	// Europe
	"CET":  mustOffset(1, 0),
	"CEST": mustOffset(2, 0),
	"EET":  mustOffset(2, 0),
	"EEST": mustOffset(3, 0),

	// Asia
	"JST": mustOffset(9, 0),
	"IST": mustOffset(5, 30),
	"HKT": mustOffset(8, 0),

	// Australia
	"AEDT": mustOffset(11, 0),
	"AEST": mustOffset(10, 0),
	"WADT": mustOffset(8, 45),
}

// Resolve returns the fixed offset for the zone abbreviation name.
// Lookups are case-sensitive: "est" is not "EST". Returns an error
// wrapping ErrUnknownZone when name is not in the table.
func Resolve(name string) (Offset, error) {
	if o, ok := zones[name]; ok {
		return o, nil
	}
	return Offset{}, fmt.Errorf("%w: unknown zone %q", ErrUnknownZone, name)
}

// Names returns the sorted list of zone abbreviations known to Resolve.
func Names() []string {
	names := maps.Keys(zones)
	slices.Sort(names)
	return names
}
