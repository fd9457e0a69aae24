package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ожидаемые рабочие дни референсного 2025 года, сведённые вручную
// по действующему календарю салона
var expectedWorkingDays2025 = map[time.Month][]int{
	time.January:  {9, 12, 13, 16, 17, 20, 21, 24, 25, 28, 29},
	time.February: {1, 2, 5, 6, 9, 10, 13, 14, 17, 18, 21, 22, 25, 26},
	time.March:    {1, 2, 5, 6, 9, 10, 13, 14, 17, 18, 21, 22, 25, 26, 29, 30},
	time.December: {3, 4, 7, 8, 11, 12, 15, 16, 19, 20, 23, 24, 27, 28},
}

func TestIsBaseWorkingDay_ReferenceMonths(t *testing.T) {
	policy := DefaultPolicy()

	for month, workingDays := range expectedWorkingDays2025 {
		expected := make(map[int]bool, len(workingDays))
		for _, d := range workingDays {
			expected[d] = true
		}

		daysInMonth := time.Date(2025, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		for day := 1; day <= daysInMonth; day++ {
			d := date(2025, month, day)
			assert.Equal(t, expected[day], policy.IsBaseWorkingDay(d),
				"unexpected classification for %s", d.Format("2006-01-02"))
		}
	}
}

func TestIsBaseWorkingDay_SpotChecks(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		date    time.Time
		working bool
	}{
		// Новогодние каникулы и первый рабочий день
		{date(2025, time.January, 1), false},
		{date(2025, time.January, 8), false},
		{date(2025, time.January, 9), true},
		{date(2025, time.January, 10), false},
		{date(2025, time.January, 11), false},
		// Хвост января — выходные после последней пары
		{date(2025, time.January, 30), false},
		{date(2025, time.January, 31), false},
		// Цикл 2/2 в середине года
		{date(2025, time.June, 1), true},
		{date(2025, time.July, 15), true},
		{date(2025, time.November, 7), false},
		// Декабрь — только перечисленные дни
		{date(2025, time.December, 31), false},
		{date(2025, time.December, 28), true},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tt.working, policy.IsBaseWorkingDay(tt.date))
		})
	}
}

func TestIsBaseWorkingDay_Deterministic(t *testing.T) {
	policy := DefaultPolicy()

	// Полный прогон референсного года: повторный вызов даёт тот же результат
	d := date(2025, time.January, 1)
	for d.Year() == 2025 {
		first := policy.IsBaseWorkingDay(d)
		second := policy.IsBaseWorkingDay(d)
		require.Equal(t, first, second, "non-deterministic result for %s", d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 1)
	}
}

func TestIsBaseWorkingDay_CycleHasTwoWorkingDaysPerWindow(t *testing.T) {
	policy := DefaultPolicy()

	// С февраля по ноябрь в каждом выровненном 4-дневном окне ровно 2 рабочих дня
	start := date(2025, time.February, 1)
	for window := start; window.Before(date(2025, time.November, 25)); window = window.AddDate(0, 0, 4) {
		working := 0
		for i := 0; i < 4; i++ {
			if policy.IsBaseWorkingDay(window.AddDate(0, 0, i)) {
				working++
			}
		}
		require.Equal(t, 2, working,
			fmt.Sprintf("window starting %s", window.Format("2006-01-02")))
	}
}

func TestMod_NonNegative(t *testing.T) {
	assert.Equal(t, 3, mod(-1, 4))
	assert.Equal(t, 0, mod(-4, 4))
	assert.Equal(t, 1, mod(5, 4))
}
