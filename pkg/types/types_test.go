package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("20261016")
	require.NoError(t, err)
	assert.Equal(t, DateString("20261016"), d)
	assert.Equal(t, "202610", d.Month())

	for _, bad := range []string{"", "2026-10-16", "20261332", "2026101"} {
		_, err := NewDateStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidDateString, bad)
	}
}

func TestDateString_AddDays(t *testing.T) {
	next, err := DateString("20261031").AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("20261101"), next)

	prev, err := DateString("20260101").AddDays(-1)
	require.NoError(t, err)
	assert.Equal(t, DateString("20251231"), prev)
}

func TestNewDateString(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, DateString("20260305"), NewDateString(ts))
}

func TestClockString_HourMinute(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"0900", 9, 0},
		{"090000", 9, 0},
		{"115900", 11, 59},
		{"2350", 23, 50},
	}
	for _, tc := range cases {
		h, m, err := ClockString(tc.in).HourMinute()
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.hour, h, tc.in)
		assert.Equal(t, tc.minute, m, tc.in)
	}

	for _, bad := range []string{"", "9", "2400", "1260", "09000", "0900xx"} {
		_, err := NewClockStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidClockString, bad)
	}
}

func TestNewClockString(t *testing.T) {
	assert.Equal(t, ClockString("090000"), NewClockString(9, 0, 0))
	assert.Equal(t, ClockString("115900"), NewClockString(11, 59, 0))
}
