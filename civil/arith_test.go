package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/civiltime/civil/calendar"
	"golang.org/x/exp/slices"
)

func TestAddDays(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		days int
		want string
	}{
		{"forward", "2024-03-15T06:00:00Z", 10, "2024-03-25T06:00:00Z"},
		{"backward", "2024-03-15T06:00:00Z", -20, "2024-02-24T06:00:00Z"},
		{"into_leap_day", "2024-02-28T00:00:00Z", 1, "2024-02-29T00:00:00Z"},
		{"over_leap_day", "2024-02-28T00:00:00Z", 2, "2024-03-01T00:00:00Z"},
		{"nonleap_feb", "2023-02-28T00:00:00Z", 1, "2023-03-01T00:00:00Z"},
		{"year_seam", "2023-12-31T23:00:00+09:00", 1, "2024-01-01T23:00:00+09:00"},
		{"whole_year", "2023-06-15T00:00:00Z", 365, "2024-06-14T00:00:00Z"},
		{"zero", "2024-01-01T00:00:00Z", 0, "2024-01-01T00:00:00Z"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := MustParse(tc.src).AddDays(tc.days)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestNextPrevDay(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("2024-02-29T10:30:00+05:30")
	next, err := d.NextDay()
	r.NoError(err)
	a.Equal("2024-03-01T10:30:00+05:30", next.String())

	back, err := next.PrevDay()
	r.NoError(err)
	a.Equal(d, back)

	prev, err := d.PrevDay()
	r.NoError(err)
	a.Equal("2024-02-28T10:30:00+05:30", prev.String())
}

func TestAddDaysRange(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	last, err := New(9999, calendar.December, 31)
	r.NoError(err)
	_, err = last.NextDay()
	r.ErrorIs(err, ErrRange)

	first, err := New(-9999, calendar.January, 1)
	r.NoError(err)
	_, err = first.PrevDay()
	r.ErrorIs(err, ErrRange)
}

func TestDateTimeAddMonths(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		src    string
		months int
		want   string
	}{
		{"simple", "2024-03-15T08:00:00Z", 2, "2024-05-15T08:00:00Z"},
		{"carry_year", "2023-11-05T00:00:00Z", 3, "2024-02-05T00:00:00Z"},
		{"clamp_feb", "2023-01-31T12:00:00Z", 1, "2023-02-28T12:00:00Z"},
		{"clamp_feb_leap", "2024-01-31T12:00:00Z", 1, "2024-02-29T12:00:00Z"},
		{"clamp_april", "2024-03-31T00:00:00Z", 1, "2024-04-30T00:00:00Z"},
		{"negative", "2024-03-31T00:00:00Z", -1, "2024-02-29T00:00:00Z"},
		{"keeps_offset", "2024-06-30T23:59:59+08:45", 6, "2024-12-30T23:59:59+08:45"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := MustParse(tc.src).AddMonths(tc.months)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestSubMonths(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("2024-03-31T00:00:00Z")
	got, err := d.SubMonths(1)
	r.NoError(err)
	a.Equal("2024-02-29T00:00:00Z", got.String())

	added, err := d.AddMonths(-1)
	r.NoError(err)
	a.Equal(added, got)
}

func TestDateTimeAddYears(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("2024-02-29T12:00:00Z")
	got, err := d.AddYears(1)
	r.NoError(err)
	a.Equal("2025-02-28T12:00:00Z", got.String())

	got, err = d.AddYears(4)
	r.NoError(err)
	a.Equal("2028-02-29T12:00:00Z", got.String())

	got, err = d.SubYears(24)
	r.NoError(err)
	a.Equal("2000-02-29T12:00:00Z", got.String())

	_, err = d.AddYears(9000)
	r.ErrorIs(err, ErrRange)
}

func TestSince(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	base := MustParse("2024-01-01T00:00:00Z")
	later := MustParse("2024-01-02T06:00:00Z")
	a.Equal(30*time.Hour, later.Since(base))
	a.Equal(-30*time.Hour, base.Since(later))
	a.Equal(time.Duration(0), base.Since(base))

	// Offsets normalize away: the same instant in two zones.
	paris := MustParse("2022-01-01T12:00:00+01:00")
	zulu := MustParse("2022-01-01T11:00:00Z")
	a.Equal(time.Duration(0), paris.Since(zulu))

	micro := MustParse("2024-01-01T00:00:00.000500Z")
	a.Equal(500*time.Microsecond, micro.Since(base))

	// A span wider than time.Duration can hold clamps at the extremes.
	far := MustParse("9999-12-31T23:59:59Z")
	ancient := MustParse("-9999-01-01T00:00:00Z")
	a.Equal(time.Duration(1<<63-1), far.Since(ancient))
	a.Equal(time.Duration(-1<<63), ancient.Since(far))
}

func TestCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	early := MustParse("2024-01-01T00:00:00Z")
	late := MustParse("2024-01-01T00:00:01Z")
	a.Equal(-1, early.Compare(late))
	a.Equal(1, late.Compare(early))
	a.Equal(0, early.Compare(early))

	a.True(early.Before(late))
	a.False(late.Before(early))
	a.True(late.After(early))
	a.False(early.After(late))

	// Equal instants under different offsets compare as equal even
	// though the values are not identical field for field.
	paris := MustParse("2022-01-01T12:00:00+01:00")
	zulu := MustParse("2022-01-01T11:00:00Z")
	a.Equal(0, paris.Compare(zulu))
	a.True(paris.Equal(zulu))
	a.NotEqual(paris, zulu)
}

func TestSort(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	ds := []DateTime{
		MustParse("2024-06-01T00:00:00Z"),
		MustParse("2022-01-01T12:00:00+01:00"),
		MustParse("1999-12-31T23:59:59Z"),
		MustParse("2024-06-01T00:00:00+09:00"),
	}
	slices.SortFunc(ds, DateTime.Compare)
	a.Equal("1999-12-31T23:59:59Z", ds[0].String())
	a.Equal("2022-01-01T12:00:00+01:00", ds[1].String())
	// The +09:00 value denotes the earlier instant of the two June dates.
	a.Equal("2024-06-01T00:00:00+09:00", ds[2].String())
	a.Equal("2024-06-01T00:00:00Z", ds[3].String())
}

func TestWithin(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	start := MustParse("2024-01-01T00:00:00Z")
	end := MustParse("2024-12-31T23:59:59Z")

	in, err := MustParse("2024-06-15T00:00:00Z").Within(start, end)
	r.NoError(err)
	a.True(in)

	// The bounds are inclusive.
	in, err = start.Within(start, end)
	r.NoError(err)
	a.True(in)
	in, err = end.Within(start, end)
	r.NoError(err)
	a.True(in)

	in, err = MustParse("2023-12-31T23:59:59Z").Within(start, end)
	r.NoError(err)
	a.False(in)
	in, err = MustParse("2025-01-01T00:00:00Z").Within(start, end)
	r.NoError(err)
	a.False(in)

	_, err = start.Within(end, start)
	r.ErrorIs(err, ErrRange)
}

func TestWeekBoundaries(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// A Wednesday.
	d := MustParse("2024-08-21T15:30:00+02:00")
	start, err := d.StartOfWeek()
	r.NoError(err)
	a.Equal("2024-08-19T15:30:00+02:00", start.String())
	a.Equal(calendar.Monday, start.Weekday())

	end, err := d.EndOfWeek()
	r.NoError(err)
	a.Equal("2024-08-25T15:30:00+02:00", end.String())
	a.Equal(calendar.Sunday, end.Weekday())

	// Both are fixed points on their own days.
	again, err := start.StartOfWeek()
	r.NoError(err)
	a.Equal(start, again)
	again, err = end.EndOfWeek()
	r.NoError(err)
	a.Equal(end, again)

	// A week straddling a year seam.
	start, err = MustParse("2022-01-01T00:00:00Z").StartOfWeek()
	r.NoError(err)
	a.Equal("2021-12-27T00:00:00Z", start.String())
}

func TestMonthBoundaries(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("2024-02-15T10:00:00Z")
	start, err := d.StartOfMonth()
	r.NoError(err)
	a.Equal("2024-02-01T10:00:00Z", start.String())

	end, err := d.EndOfMonth()
	r.NoError(err)
	a.Equal("2024-02-29T10:00:00Z", end.String())

	end, err = MustParse("2023-02-15T10:00:00Z").EndOfMonth()
	r.NoError(err)
	a.Equal("2023-02-28T10:00:00Z", end.String())

	again, err := start.StartOfMonth()
	r.NoError(err)
	a.Equal(start, again)
}

func TestYearBoundaries(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d := MustParse("2024-06-15T08:30:00-05:00")
	start, err := d.StartOfYear()
	r.NoError(err)
	a.Equal("2024-01-01T08:30:00-05:00", start.String())

	end, err := d.EndOfYear()
	r.NoError(err)
	a.Equal("2024-12-31T08:30:00-05:00", end.String())
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	jan := MustParse("2024-01-01T00:00:00Z")
	mar := MustParse("2024-03-01T00:00:00Z")
	a.Equal(int64(60), DaysBetween(jan, mar))
	a.Equal(int64(-60), DaysBetween(mar, jan))
	a.Equal(int64(0), DaysBetween(jan, jan))

	// Only the calendar dates count; clock and offset are ignored.
	a.Equal(int64(1), DaysBetween(
		MustParse("2024-01-01T23:59:59Z"),
		MustParse("2024-01-02T00:00:00+09:00"),
	))
}

func TestMinMax(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	early := MustParse("2022-01-01T11:00:00Z")
	late := MustParse("2024-01-01T00:00:00Z")
	a.Equal(early, Min(early, late))
	a.Equal(early, Min(late, early))
	a.Equal(late, Max(early, late))
	a.Equal(late, Max(late, early))

	// Equal instants resolve to the first argument.
	paris := MustParse("2022-01-01T12:00:00+01:00")
	a.Equal(paris, Min(paris, early))
	a.Equal(early, Max(early, paris))
}
