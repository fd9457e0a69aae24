package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/internal/slotgrid"
	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

var (
	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("get_day_slots: internal error")
)

// Request модель запроса расписания дня
type Request struct {
	Date time.Time
}

// Slot один слот дня для календаря клиента
type Slot struct {
	Time      types.TimeString
	Available bool
}

// Response расписание дня: эффективный статус и занятость слотов
type Response struct {
	Date    time.Time
	Working bool
	Slots   []Slot
}

// UseCase use case расписания дня для клиентского календаря
// Объединяет календарь с переопределениями, сетку слотов и журнал записей
type UseCase struct {
	workingDays     WorkingDayService
	reservationRepo ReservationRepository
	grid            *slotgrid.Grid
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workingDays WorkingDayService,
	reservationRepo ReservationRepository,
	grid *slotgrid.Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingDays:     workingDays,
		reservationRepo: reservationRepo,
		grid:            grid,
		logger:          logger,
	}
}

// Execute возвращает расписание дня
// Для нерабочего дня список слотов пуст
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	working, err := uc.workingDays.IsWorkingDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to resolve working day %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to resolve working day: %v", ErrInternal, err)
	}

	if !working {
		return &Response{Date: req.Date, Working: false, Slots: []Slot{}}, nil
	}

	reservations, err := uc.reservationRepo.ListForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to load reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	booked := make(map[string]bool, len(reservations))
	for _, res := range reservations {
		booked[res.Time.String()] = true
	}

	gridSlots := uc.grid.Enumerate()
	slots := make([]Slot, 0, len(gridSlots))
	for _, t := range gridSlots {
		slots = append(slots, Slot{
			Time:      t,
			Available: !booked[t.String()],
		})
	}

	return &Response{Date: req.Date, Working: true, Slots: slots}, nil
}
