package calendar

import "time"

// Policy параметры базового календаря рабочих дней
// Константы — данные конфигурации, а не зашитые в логику числа
//
// Календарь ведётся вручную и состоит из трёх режимов:
//  1. Декабрь: явный список рабочих чисел, остальные дни нерабочие
//  2. Январь: каникулы 1..HolidayEndDay, первый рабочий день ResumptionDay,
//     затем пары рабочих дней каждые 4 дня начиная с PairCycleStartDay
//  3. Остальные месяцы: цикл 4 дня (2 рабочих, 2 выходных), фаза отсчитывается
//     от последнего январского рабочего дня (AnchorDay) текущего года
type Policy struct {
	DecemberWorkingDays []int
	HolidayEndDay       int // последний день новогодних каникул
	ResumptionDay       int // первый рабочий день после каникул
	PairCycleStartDay   int // начало повторяющихся пар в январе
	AnchorDay           int // последний рабочий день января, точка отсчёта для остальных месяцев
}

// DefaultPolicy возвращает действующий календарь салона
func DefaultPolicy() Policy {
	return Policy{
		DecemberWorkingDays: []int{3, 4, 7, 8, 11, 12, 15, 16, 19, 20, 23, 24, 27, 28},
		HolidayEndDay:       8,
		ResumptionDay:       9,
		PairCycleStartDay:   12,
		AnchorDay:           29,
	}
}

// IsBaseWorkingDay определяет, является ли дата рабочим днём по базовому
// календарю, без учёта админских переопределений
// Чистая функция без I/O, детерминированная для любой даты
func (p Policy) IsBaseWorkingDay(date time.Time) bool {
	month := date.Month()
	day := date.Day()

	switch {
	case month == time.December:
		return p.isDecemberWorkingDay(day)
	case month == time.January:
		return p.isJanuaryWorkingDay(day)
	default:
		return p.isCycleWorkingDay(date)
	}
}

func (p Policy) isDecemberWorkingDay(day int) bool {
	for _, d := range p.DecemberWorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

func (p Policy) isJanuaryWorkingDay(day int) bool {
	// Новогодние каникулы
	if day <= p.HolidayEndDay {
		return false
	}

	if day == p.ResumptionDay {
		return true
	}

	// Пары рабочих дней: PairCycleStartDay, +1, затем каждые 4 дня
	if day >= p.PairCycleStartDay {
		cycleDay := mod(day-p.PairCycleStartDay, 4)
		return cycleDay == 0 || cycleDay == 1
	}

	return false
}

// isCycleWorkingDay режим для февраля..ноября: цикл 4 дня от январского якоря
// Якорь — последний рабочий день января текущего года; следующие два дня
// выходные, затем два рабочих, и так далее
func (p Policy) isCycleWorkingDay(date time.Time) bool {
	anchor := time.Date(date.Year(), time.January, p.AnchorDay, 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	daysDiff := int(day.Sub(anchor).Hours() / 24)
	if daysDiff < 1 {
		return false
	}

	cycleDay := mod(daysDiff-1, 4)
	return cycleDay == 2 || cycleDay == 3
}

// mod неотрицательный остаток от деления
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
