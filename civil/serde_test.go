package civil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/civiltime/civil/format"
)

func TestJSON(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("2022-01-01T12:00:00.000042+01:00")
	data, err := json.Marshal(d)
	r.NoError(err)
	a.JSONEq(
		`{"year":2022,"month":1,"day":1,"hour":12,"minute":0,"second":0,`+
			`"microsecond":42,"offset":"+01:00"}`,
		string(data),
	)

	var decoded DateTime
	r.NoError(json.Unmarshal(data, &decoded))
	a.Equal(d, decoded)

	// Zero clock fields may be omitted from the document.
	r.NoError(json.Unmarshal(
		[]byte(`{"year":2024,"month":2,"day":29,"offset":"Z"}`), &decoded,
	))
	a.Equal(MustParse("2024-02-29"), decoded)
}

func TestJSONInvalid(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		doc  string
		err  error
	}{
		{"not_json", `{"year":`, format.ErrFormat},
		{"wrong_type", `{"year":"two thousand"}`, format.ErrFormat},
		{"bad_offset", `{"year":2024,"month":1,"day":1,"offset":"+1:00"}`, format.ErrFormat},
		{"no_such_date", `{"year":2023,"month":2,"day":29,"offset":"Z"}`, ErrField},
		{"month_13", `{"year":2024,"month":13,"day":1,"offset":"Z"}`, ErrField},
		{"hour_high", `{"year":2024,"month":1,"day":1,"hour":24,"offset":"Z"}`, ErrField},
		{"year_high", `{"year":10000,"month":1,"day":1,"offset":"Z"}`, ErrRange},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var d DateTime
			err := json.Unmarshal([]byte(tc.doc), &d)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("2024-06-15T08:30:00-05:00")
	text, err := d.MarshalText()
	r.NoError(err)
	a.Equal("2024-06-15T08:30:00-05:00", string(text))

	var decoded DateTime
	r.NoError(decoded.UnmarshalText(text))
	a.Equal(d, decoded)

	r.ErrorIs(decoded.UnmarshalText([]byte("not a timestamp")), format.ErrFormat)
	r.ErrorIs(decoded.UnmarshalText([]byte("2024-02-30T00:00:00Z")), ErrField)
}

func TestBinary(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("1969-07-20T20:17:40.000999-04:00")
	data, err := d.MarshalBinary()
	r.NoError(err)

	var decoded DateTime
	r.NoError(decoded.UnmarshalBinary(data))
	a.Equal(d, decoded)
}

func TestScan(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	want := MustParse("2022-01-01T12:00:00+01:00")

	var d DateTime
	r.NoError(d.Scan("2022-01-01T12:00:00+01:00"))
	a.Equal(want, d)

	d = DateTime{}
	r.NoError(d.Scan([]byte("2022-01-01T12:00:00+01:00")))
	a.Equal(want, d)

	// NULL and empty values leave the destination untouched.
	d = want
	r.NoError(d.Scan(nil))
	a.Equal(want, d)
	r.NoError(d.Scan(""))
	a.Equal(want, d)
	r.NoError(d.Scan([]byte{}))
	a.Equal(want, d)

	err := d.Scan("bogus")
	r.ErrorIs(err, ErrScan)
	err = d.Scan(42)
	r.ErrorIs(err, ErrScan)
	r.EqualError(err, "scan: unable to scan type int into DateTime")
}

func TestValue(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("2022-01-01T12:00:00+01:00")
	value, err := d.Value()
	r.NoError(err)
	a.Equal("2022-01-01T12:00:00+01:00", value)

	// The driver value scans back to the identical DateTime.
	var decoded DateTime
	str, ok := value.(string)
	r.True(ok)
	r.NoError(decoded.Scan(str))
	a.Equal(d, decoded)
}
