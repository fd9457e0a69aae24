package reservations

import (
	"context"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	ListAll(ctx context.Context, since time.Time) ([]*domain.Reservation, error)
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	Delete(ctx context.Context, date time.Time, t types.TimeString) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
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
