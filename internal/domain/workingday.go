package domain

import "time"

// DayStatus explicit working-day override status
type DayStatus string

const (
	DayStatusWorking DayStatus = "working"
	DayStatusOff     DayStatus = "off"
)

// IsValid returns true for a known status value
func (s DayStatus) IsValid() bool {
	return s == DayStatusWorking || s == DayStatusOff
}

// DayOverride admin-set working/off status for a specific date
// Absence of an override means "defer to the calendar policy"
type DayOverride struct {
	Date      time.Time
	Status    DayStatus
	UpdatedAt time.Time
}
