package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"2025-10-15", nil},
		{"2025-01-01", nil},
		{"15.10.2025", ErrBadDateFormat},
		{"2025-10-5", ErrBadDateFormat},
		{"", ErrBadDateFormat},
		{"2025-13-01", ErrBadDate},
		{"2025-02-30", ErrBadDate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, date.Format("2006-01-02"))
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"10:00", nil},
		{"00:00", nil},
		{"23:59", nil},
		{"9:00", ErrBadTimeFormat},
		{"1000", ErrBadTimeFormat},
		{"", ErrBadTimeFormat},
		{"24:00", ErrBadTime},
		{"10:60", ErrBadTime},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseTime(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.TimeString(tt.input), parsed)
		})
	}
}

func TestParseDate_PreservesCalendarDate(t *testing.T) {
	date, err := ParseDate("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.June, date.Month())
	assert.Equal(t, 10, date.Day())
}
