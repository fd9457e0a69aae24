package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/internal/infra/storage/reservation"
	"github.com/antoniozubakha/salon-booking-service/internal/slotgrid"
)

// UseCase use case бронирования слотов
//
// Последовательность одного запроса:
//  1. Валидация входа (до блокировок и обращений к хранилищу)
//  2. Раскладка процедуры на слоты; отказ, если не помещается до закрытия
//  3. Захват блокировок на все слоты в порядке возрастания времени;
//     неудача — откат уже захваченных и конфликт с именем занятого слота
//  4. Повторная проверка занятости по журналу записей
//  5. Вставка всех записей в одной сериализуемой транзакции
//  6. Безусловное снятие всех блокировок
type UseCase struct {
	reservationRepo ReservationRepository
	locks           LockCoordinator
	grid            *slotgrid.Grid
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики отключены
func NewUseCase(
	reservationRepo ReservationRepository,
	locks LockCoordinator,
	grid *slotgrid.Grid,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		locks:           locks,
		grid:            grid,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	if !uc.grid.Contains(req.StartTime) {
		uc.logger.Warn("CreateBooking: time %s is off the slot grid", req.StartTime)
		return nil, fmt.Errorf("%w: time %s is off the slot grid", ErrInvalidInput, req.StartTime)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	// 2. Раскладка на слоты
	// Процедура, конец которой выходит за время закрытия, отклоняется целиком:
	// молчаливое укорачивание недопустимо
	if !uc.grid.Fits(req.StartTime, duration) {
		uc.logger.Warn("CreateBooking: %s + %d minutes exceeds closing time %s",
			req.StartTime, duration, uc.grid.CloseTime)
		return nil, ErrWontFit
	}

	slots := uc.grid.Expand(req.StartTime, duration)
	required := (duration + uc.grid.SlotMinutes - 1) / uc.grid.SlotMinutes
	if len(slots) < required {
		uc.logger.Warn("CreateBooking: expansion truncated, %d of %d slots", len(slots), required)
		return nil, ErrWontFit
	}

	// 3. Захват блокировок в порядке возрастания времени
	// Фиксированный порядок исключает взаимную блокировку пересекающихся запросов
	acquired := make([]domain.SlotKey, 0, len(slots))
	defer func() {
		// Блокировки не переживают запрос ни на одном из путей выхода
		for _, key := range acquired {
			uc.locks.Unlock(key)
		}
	}()

	dateStr := req.Date.Format(domain.DateFormat)
	for _, slotTime := range slots {
		key := domain.SlotKey{Date: dateStr, Time: slotTime}
		if !uc.locks.TryLock(key) {
			uc.logger.Warn("CreateBooking: slot %s is locked by another request", key)
			uc.incConflicts()
			return nil, &SlotConflictError{Slot: slotTime, Held: true}
		}
		acquired = append(acquired, key)
	}

	// 4-5. Проверка журнала и вставка — в одной сериализуемой транзакции,
	// частичная запись части слотов невозможна по построению
	appointmentID := uuid.NewString()
	created := make([]BookedSlot, 0, len(slots))

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.ListForDate(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to load reservations: %v", ErrStorage, err)
		}

		booked := make(map[string]bool, len(existing))
		for _, res := range existing {
			booked[res.Time.String()] = true
		}

		for _, slotTime := range slots {
			if booked[slotTime.String()] {
				return &SlotConflictError{Slot: slotTime}
			}
		}

		for _, slotTime := range slots {
			res := &domain.Reservation{
				AppointmentID: appointmentID,
				Date:          req.Date,
				Time:          slotTime,
				Name:          req.Name,
				Phone:         req.Phone,
				Service:       req.Service,
				BookedAt:      now,
			}

			if err := uc.reservationRepo.Create(txCtx, res); err != nil {
				if errors.Is(err, reservation.ErrSlotTaken) {
					// Уникальный индекс сработал раньше нас — конкурент успел
					return &SlotConflictError{Slot: slotTime}
				}
				return fmt.Errorf("%w: failed to create reservation: %v", ErrStorage, err)
			}

			created = append(created, BookedSlot{
				Date:     res.Date,
				Time:     res.Time,
				Name:     res.Name,
				Phone:    res.Phone,
				Service:  res.Service,
				BookedAt: res.BookedAt,
			})
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotBusy) {
			uc.logger.Warn("CreateBooking: conflict: %v", err)
			uc.incConflicts()
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: appointment %s created, %d slots starting %s %s",
		appointmentID, len(created), dateStr, req.StartTime)
	uc.incCreated()

	return &Response{
		AppointmentID: appointmentID,
		Slots:         created,
	}, nil
}

func (uc *UseCase) incCreated() {
	if uc.metrics != nil {
		uc.metrics.IncBookingsCreated()
	}
}

func (uc *UseCase) incConflicts() {
	if uc.metrics != nil {
		uc.metrics.IncBookingConflicts()
	}
}
