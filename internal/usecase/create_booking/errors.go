package create_booking

import (
	"errors"
	"fmt"

	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrWontFit возвращается, когда процедура не помещается до закрытия
	ErrWontFit = errors.New("create_booking: service will not fit before closing")

	// ErrSlotBusy возвращается, когда слот занят записью или блокировкой
	// Всегда оборачивается в SlotConflictError с указанием конкретного слота
	ErrSlotBusy = errors.New("create_booking: slot is busy")

	// ErrStorage возвращается при сбое хранилища, не связанном с конфликтом
	// Отличается от ErrSlotBusy: повторять запрос с тем же слотом имеет смысл
	ErrStorage = errors.New("create_booking: storage failure")
)

// SlotConflictError конфликт по конкретному слоту
// errors.Is(err, ErrSlotBusy) возвращает true
// Held отличает отказ координатора блокировок (слот обрабатывается другим
// запросом) от уже существующей записи в журнале
type SlotConflictError struct {
	Slot types.TimeString
	Held bool
}

// Error возвращает текст ошибки
func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("create_booking: slot %s is busy", e.Slot)
}

// Unwrap возвращает сентинельную ошибку конфликта
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotBusy
}
