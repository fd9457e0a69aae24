package get_day_slots

import (
	"context"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

// WorkingDayService интерфейс сервиса рабочих дней
type WorkingDayService interface {
	IsWorkingDay(ctx context.Context, date time.Time) (bool, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
