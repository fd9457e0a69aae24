package workingdays

import (
	"context"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

// OverrideRepository интерфейс репозитория переопределений рабочих дней
type OverrideRepository interface {
	List(ctx context.Context) ([]*domain.DayOverride, error)
	Upsert(ctx context.Context, date time.Time, status domain.DayStatus) error
	Delete(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
