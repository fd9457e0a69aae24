package slotgrid

import (
	"errors"
	"fmt"

	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidGrid возвращается при некорректных параметрах сетки
	ErrInvalidGrid = errors.New("slotgrid: invalid grid configuration")
)

// Grid сетка получасовых слотов рабочего дня
// OpenTime — первый слот, CloseTime — граница окончания последней процедуры;
// последний допустимый старт = CloseTime - SlotMinutes
type Grid struct {
	SlotMinutes int
	OpenTime    types.TimeString
	CloseTime   types.TimeString

	lastStart types.TimeString
}

// New создает сетку слотов, проверяя согласованность параметров
func New(openTime, closeTime string, slotMinutes int) (*Grid, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot minutes must be positive, got %d", ErrInvalidGrid, slotMinutes)
	}

	open, err := types.NewTimeStringFromString(openTime)
	if err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidGrid, err)
	}

	closing, err := types.NewTimeStringFromString(closeTime)
	if err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidGrid, err)
	}

	if !open.IsBefore(closing) {
		return nil, fmt.Errorf("%w: open time %s is not before close time %s", ErrInvalidGrid, open, closing)
	}

	lastStart, err := closing.AddMinutes(-slotMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: last start: %v", ErrInvalidGrid, err)
	}

	return &Grid{
		SlotMinutes: slotMinutes,
		OpenTime:    open,
		CloseTime:   closing,
		lastStart:   lastStart,
	}, nil
}

// LastStart возвращает последнее допустимое время начала слота
func (g *Grid) LastStart() types.TimeString {
	return g.lastStart
}

// Enumerate возвращает все времена начала слотов рабочего дня по порядку,
// от открытия до последнего допустимого старта включительно
func (g *Grid) Enumerate() []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := g.OpenTime

	for !current.IsAfter(g.lastStart) {
		slots = append(slots, current)

		next, err := current.AddMinutes(g.SlotMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// Expand раскладывает процедуру (время начала + длительность) на занимаемые
// ею слоты: ceil(duration/SlotMinutes) слотов с шагом SlotMinutes
// Слоты за границей последнего допустимого старта отбрасываются — вызывающая
// сторона обязана трактовать укороченный результат как "не помещается"
func (g *Grid) Expand(start types.TimeString, durationMinutes int) []types.TimeString {
	numberOfSlots := (durationMinutes + g.SlotMinutes - 1) / g.SlotMinutes

	slots := make([]types.TimeString, 0, numberOfSlots)
	current := start

	for i := 0; i < numberOfSlots; i++ {
		if current.IsAfter(g.lastStart) {
			break
		}
		slots = append(slots, current)

		next, err := current.AddMinutes(g.SlotMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// Fits проверяет, что процедура целиком помещается до закрытия
func (g *Grid) Fits(start types.TimeString, durationMinutes int) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	return !end.IsAfter(g.CloseTime)
}

// Contains проверяет, что время лежит на сетке слотов рабочего дня
func (g *Grid) Contains(t types.TimeString) bool {
	if t.IsBefore(g.OpenTime) || t.IsAfter(g.lastStart) {
		return false
	}

	tm, err := t.Minutes()
	if err != nil {
		return false
	}
	om, err := g.OpenTime.Minutes()
	if err != nil {
		return false
	}

	return (tm-om)%g.SlotMinutes == 0
}
