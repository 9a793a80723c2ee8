package civil

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theory/civiltime/civil/format"
)

// ErrScan wraps database scanning errors.
var ErrScan = errors.New("scan")

// jsonDateTime is the field-for-field interchange form of a DateTime.
// The offset travels as its RFC 3339 string ("Z" or "±HH:MM") so the
// document stays readable.
type jsonDateTime struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Microsecond int    `json:"microsecond"`
	Offset      string `json:"offset"`
}

// MarshalJSON implements the json.Marshaler interface, encoding every
// primary field of d as a JSON object.
func (d DateTime) MarshalJSON() ([]byte, error) {
	//nolint:wrapcheck // Okay to return unwrapped error
	return json.Marshal(jsonDateTime{
		Year:        d.year,
		Month:       int(d.month),
		Day:         d.day,
		Hour:        d.hour,
		Minute:      d.minute,
		Second:      d.second,
		Microsecond: d.micro,
		Offset:      d.offset.String(),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface. The decoded
// fields are validated as a whole, so a document with a nonexistent
// date is rejected the same way construction through New rejects it.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw jsonDateTime
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", format.ErrFormat, err)
	}
	seconds, err := format.ParseOffset(raw.Offset)
	if err != nil {
		return err
	}
	parsed, err := fromComponents(format.Components{
		Year:          raw.Year,
		Month:         raw.Month,
		Day:           raw.Day,
		Hour:          raw.Hour,
		Minute:        raw.Minute,
		Second:        raw.Second,
		Microsecond:   raw.Microsecond,
		OffsetSeconds: seconds,
	})
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler using the RFC 3339
// form.
func (d DateTime) MarshalText() ([]byte, error) {
	return d.MarshalBinary()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime) UnmarshalText(data []byte) error {
	return d.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d DateTime) MarshalBinary() ([]byte, error) {
	return []byte(d.RFC3339()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *DateTime) UnmarshalBinary(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner so DateTimes can be read from databases
// transparently. Currently, database types that map to string and
// []byte are supported. Please consult database-specific driver
// documentation for matching types.
func (d *DateTime) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		// An empty string from a table leaves a zero DateTime.
		if src == "" {
			return nil
		}
		parsed, err := Parse(src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*d = parsed
	case []byte:
		if len(src) == 0 {
			return nil
		}
		return d.Scan(string(src))
	default:
		return fmt.Errorf("%w: unable to scan type %T into DateTime", ErrScan, src)
	}
	return nil
}

// Value implements sql.Valuer so that DateTimes can be written to
// databases transparently. Currently, DateTimes map to their RFC 3339
// strings.
func (d DateTime) Value() (driver.Value, error) {
	return d.String(), nil
}
