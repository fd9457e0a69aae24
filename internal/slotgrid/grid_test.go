package slotgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	grid, err := New("09:00", "21:00", 30)
	require.NoError(t, err)
	return grid
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		open, close string
		slotMinutes int
		wantErr     bool
	}{
		{"valid", "09:00", "21:00", 30, false},
		{"bad open time", "9:00", "21:00", 30, true},
		{"bad close time", "09:00", "25:00", 30, true},
		{"zero slot", "09:00", "21:00", 0, true},
		{"negative slot", "09:00", "21:00", -30, true},
		{"close before open", "21:00", "09:00", 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.open, tt.close, tt.slotMinutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGrid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGrid_Enumerate(t *testing.T) {
	grid := newTestGrid(t)

	slots := grid.Enumerate()

	require.Len(t, slots, 24)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("20:30"), slots[len(slots)-1])
}

func TestGrid_LastStart(t *testing.T) {
	grid := newTestGrid(t)
	assert.Equal(t, types.TimeString("20:30"), grid.LastStart())
}

func TestGrid_Expand(t *testing.T) {
	grid := newTestGrid(t)

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     []types.TimeString
	}{
		{"single slot", "10:00", 30, []types.TimeString{"10:00"}},
		{"two slots", "10:00", 60, []types.TimeString{"10:00", "10:30"}},
		{"rounds up partial slot", "10:00", 45, []types.TimeString{"10:00", "10:30"}},
		{"three slots", "18:00", 90, []types.TimeString{"18:00", "18:30", "19:00"}},
		{"truncated at closing", "20:30", 90, []types.TimeString{"20:30"}},
		{"last slot of the day", "20:30", 30, []types.TimeString{"20:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Expand(tt.start, tt.duration))
		})
	}
}

func TestGrid_Fits(t *testing.T) {
	grid := newTestGrid(t)

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     bool
	}{
		{"fits exactly to closing", "20:30", 30, true},
		{"ninety minutes too late", "20:30", 90, false},
		{"sixty minutes at the edge", "20:00", 60, true},
		{"sixty minutes past the edge", "20:30", 60, false},
		{"morning long booking", "09:00", 120, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Fits(tt.start, tt.duration))
		})
	}
}

func TestGrid_Contains(t *testing.T) {
	grid := newTestGrid(t)

	tests := []struct {
		name string
		time types.TimeString
		want bool
	}{
		{"opening slot", "09:00", true},
		{"last slot", "20:30", true},
		{"mid-day slot", "14:30", true},
		{"before opening", "08:30", false},
		{"at closing", "21:00", false},
		{"after closing", "22:00", false},
		{"off-grid minute", "10:15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Contains(tt.time))
		})
	}
}
