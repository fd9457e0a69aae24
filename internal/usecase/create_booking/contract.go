package create_booking

import (
	"context"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// LockCoordinator интерфейс координатора блокировок слотов
type LockCoordinator interface {
	TryLock(key domain.SlotKey) bool
	Unlock(key domain.SlotKey)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	IncBookingsCreated()
	IncBookingConflicts()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
