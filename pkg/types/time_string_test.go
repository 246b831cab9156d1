package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid HH:MM", input: "09:30", want: "09:30"},
		{name: "valid with seconds", input: "09:30:45", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := TimeString("14:45")
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
}

func TestTimeString_TruncateToHour(t *testing.T) {
	assert.Equal(t, TimeString("09:00"), TimeString("09:45").TruncateToHour())
	assert.Equal(t, TimeString("09:00"), TimeString("09:00").TruncateToHour())
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore(TimeString("09:00")))
	assert.True(t, TimeString("09:30").IsAfter(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsBefore(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsAfter(TimeString("09:00")))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("11:15")))
	assert.Equal(t, TimeString("11:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 1, 12, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 1, 8, 7, 0, 0, time.UTC))
	assert.Equal(t, TimeString("08:07"), ts)
}
