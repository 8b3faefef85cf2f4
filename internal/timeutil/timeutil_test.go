package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToSeconds(t *testing.T) {
	cases := []struct {
		Name  string
		Input string
		Want  int
		Err   bool
	}{
		{Name: "minutes and seconds", Input: "01:30", Want: 90},
		{Name: "top of hour", Input: "00:00", Want: 0},
		{Name: "unbounded minutes", Input: "75:00", Want: 4500},
		{Name: "seconds not range checked", Input: "01:75", Want: 135},
		{Name: "surrounding space", Input: " 14:00 ", Want: 840},
		{Name: "minutes only", Input: "5", Err: true},
		{Name: "missing seconds", Input: "5:", Err: true},
		{Name: "letters", Input: "ab:cd", Err: true},
		{Name: "empty", Input: "", Err: true},
		{Name: "negative", Input: "-1:00", Err: true},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := TimeToSeconds(tc.Input)
			if tc.Err {
				assert.ErrorIs(t, err, errInvalidTime)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestSecondsToTime(t *testing.T) {
	assert.Equal(t, "01:30", SecondsToTime(90))
	assert.Equal(t, "00:00", SecondsToTime(0))
	assert.Equal(t, "59:59", SecondsToTime(3599))
	assert.Equal(t, "60:00", SecondsToTime(3600))
}

func TestRoundTrip(t *testing.T) {
	for sec := 0; sec < HourSeconds; sec++ {
		got, err := TimeToSeconds(SecondsToTime(sec))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", sec, err)
		}

		if got != sec {
			t.Fatalf("round trip of %d returned %d", sec, got)
		}
	}
}

func TestClampSeconds(t *testing.T) {
	assert.Equal(t, 3540, ClampSeconds(-60))
	assert.Equal(t, 60, ClampSeconds(3660))
	assert.Equal(t, 0, ClampSeconds(3600))
	assert.Equal(t, 1234, ClampSeconds(1234))
}

func TestDurationBetween(t *testing.T) {
	assert.Equal(t, 840, DurationBetween(0, 840))
	assert.Equal(t, 120, DurationBetween(3540, 60))
	assert.Equal(t, 0, DurationBetween(600, 600))
	assert.Equal(t, 3600, DurationBetween(0, 3600))
	assert.Equal(t, 3600, DurationBetween(600, 4200))
	assert.Equal(t, 0, DurationBetween(3600, 0))
}

func TestEndOffset(t *testing.T) {
	assert.Equal(t, 840, EndOffset(0, 840))
	assert.Equal(t, 60, EndOffset(3540, 120))
	assert.Equal(t, 3600, EndOffset(0, 3600))
	assert.Equal(t, 4200, EndOffset(600, 3600))
	assert.Equal(t, 3600, DurationBetween(600, EndOffset(600, 3600)))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2025-03-01", now)
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())

	_, err = FromStr("qwxzv", now)
	assert.ErrorIs(t, err, errInvalidDate)
}

func TestDayStartFromStr(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	got, err := DayStartFromStr("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())

	got, err = DayStartFromStr("2025-03-01 15:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, got.Location()), got)

	_, err = DayStartFromStr("qwxzv", now)
	assert.ErrorIs(t, err, errInvalidDate)
}

func TestRoundToStart(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	in := time.Date(2025, 3, 10, 23, 59, 59, 999, loc)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), RoundToStart(in))
}
