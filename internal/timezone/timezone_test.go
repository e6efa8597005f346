package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimezone(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		wantErr bool
	}{
		{name: "empty falls back to local", tz: "", wantErr: false},
		{name: "UTC", tz: "UTC", wantErr: false},
		{name: "valid IANA zone", tz: "America/Chicago", wantErr: false},
		{name: "half hour zone", tz: "Asia/Kolkata", wantErr: false},
		{name: "garbage", tz: "Not/AZone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseTimezone(tt.tz)
			// Even on error a usable location is returned.
			require.NotNil(t, loc)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, time.Local, loc)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidTimezone(t *testing.T) {
	assert.True(t, IsValidTimezone(""))
	assert.True(t, IsValidTimezone("UTC"))
	assert.True(t, IsValidTimezone("Europe/London"))
	assert.False(t, IsValidTimezone("Mars/Olympus"))
}

func TestOffsetString(t *testing.T) {
	// Fixed instant so DST state is known: 2025-06-15 12:00 UTC.
	instant := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "UTC", zone: "UTC", want: "+00:00"},
		{name: "negative offset with DST", zone: "America/Chicago", want: "-05:00"},
		{name: "positive offset", zone: "Asia/Tokyo", want: "+09:00"},
		{name: "half hour offset", zone: "Asia/Kolkata", want: "+05:30"},
		{name: "southern hemisphere winter", zone: "Australia/Sydney", want: "+10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, OffsetString(instant.In(loc)))
		})
	}
}

func TestOffsetStringTracksDST(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	winter := time.Date(2025, 1, 15, 12, 0, 0, 0, loc)
	summer := time.Date(2025, 7, 15, 12, 0, 0, 0, loc)

	assert.Equal(t, "-06:00", OffsetString(winter))
	assert.Equal(t, "-05:00", OffsetString(summer))
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2025-03-10 23:30 UTC is already 2025-03-11 in Tokyo.
	instant := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	got := StartOfDay(instant, loc)

	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 11, got.Day())
	assert.Equal(t, 0, got.Hour())
}
