// Package timeutil converts between "mm:ss" strings and second offsets within
// a broadcast hour.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/hourclock/internal/apperr"
)

const (
	secondsInAMinute = 60

	// HourSeconds is the length of a clock in seconds.
	HourSeconds = 3600
)

var (
	errInvalidTime = &apperr.Error{
		Message: "invalid time %q: use the mm:ss format",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to understand date %q",
	}
)

// ErrInvalidTime is returned for strings that are not in the mm:ss format.
var ErrInvalidTime = errInvalidTime

// TimeToSeconds parses a "mm:ss" string into seconds. Minutes are unbounded
// and the seconds field is not range checked, so "01:75" is 135. Both
// fields are required.
func TimeToSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)

	minStr, secStr, found := strings.Cut(s, ":")
	if !found {
		return 0, errInvalidTime.Fmt(s)
	}

	mins, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil {
		return 0, errInvalidTime.Fmt(s)
	}

	secs, err := strconv.Atoi(strings.TrimSpace(secStr))
	if err != nil {
		return 0, errInvalidTime.Fmt(s)
	}

	if mins < 0 || secs < 0 {
		return 0, errInvalidTime.Fmt(s)
	}

	return mins*secondsInAMinute + secs, nil
}

// SecondsToTime formats seconds as "mm:ss" with both fields zero-padded.
func SecondsToTime(seconds int) string {
	m, s := SecsToMinsAndSecs(seconds)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// SecsToMinsAndSecs splits seconds into whole minutes and the remainder.
func SecsToMinsAndSecs(seconds int) (mins, secs int) {
	return seconds / secondsInAMinute, seconds % secondsInAMinute
}

// ClampSeconds wraps any second offset into [0, HourSeconds).
func ClampSeconds(sec int) int {
	return ((sec % HourSeconds) + HourSeconds) % HourSeconds
}

// DurationBetween returns the forward distance from start to end around the
// clock face. Equal offsets yield zero, while an end a whole hour after the
// start ("00:00" to "60:00") yields a full hour.
func DurationBetween(start, end int) int {
	d := ClampSeconds(end - start)
	if d == 0 && end > start {
		return HourSeconds
	}

	return d
}

// EndOffset returns the end of a range wrapped into the hour. A range
// spanning the whole hour keeps its end one hour past the start so that
// DurationBetween reads it back as a full hour.
func EndOffset(start, duration int) int {
	if duration >= HourSeconds {
		return start + HourSeconds
	}

	return ClampSeconds(start + duration)
}

// FromStr parses a human date expression such as "yesterday" or
// "2025-01-02" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}

// DayStartFromStr parses s like FromStr and returns the start of that day,
// so "yesterday" covers all of yesterday.
func DayStartFromStr(s string, now time.Time) (time.Time, error) {
	t, err := FromStr(s, now)
	if err != nil {
		return time.Time{}, err
	}

	return RoundToStart(t), nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}
