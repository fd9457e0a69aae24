package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/internal/infra/storage/reservation"
	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

// Service сервис чтения и административного освобождения записей
type Service struct {
	repo            ReservationRepository
	retentionMonths int
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
// retentionMonths ограничивает окно выдачи старых записей при чтении;
// сами строки при этом никогда не удаляются
func NewService(repo ReservationRepository, retentionMonths int, logger Logger) *Service {
	return &Service{
		repo:            repo,
		retentionMonths: retentionMonths,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List возвращает записи в пределах окна хранения
func (s *Service) List(ctx context.Context) ([]*domain.Reservation, error) {
	cutoff := s.retentionCutoff()

	reservations, err := s.repo.ListAll(ctx, cutoff)
	if err != nil {
		s.logger.Error("List: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	return reservations, nil
}

// ListForDate возвращает записи на конкретную дату
// Окно хранения действует и здесь: дата старше окна отдаёт пустой список,
// в хранилище при этом не ходим — все строки даты заведомо за границей
func (s *Service) ListForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	if date.Before(s.retentionCutoff()) {
		return []*domain.Reservation{}, nil
	}

	reservations, err := s.repo.ListForDate(ctx, date)
	if err != nil {
		s.logger.Error("ListForDate: failed to load reservations for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	return reservations, nil
}

// TimesForDate возвращает занятые времена на дату
func (s *Service) TimesForDate(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	reservations, err := s.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	times := make([]types.TimeString, 0, len(reservations))
	for _, res := range reservations {
		times = append(times, res.Time)
	}

	return times, nil
}

// Release освобождает слот (административное удаление записи)
// Идёт в обход координатора блокировок: удаление единственно и авторитетно
func (s *Service) Release(ctx context.Context, date time.Time, t types.TimeString) error {
	err := s.repo.Delete(ctx, date, t)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			s.logger.Warn("Release: reservation %s %s not found", date.Format(domain.DateFormat), t)
			return ErrReservationNotFound
		}
		s.logger.Error("Release: failed to delete reservation %s %s: %v",
			date.Format(domain.DateFormat), t, err)
		return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
	}

	s.logger.Info("Release: reservation %s %s released", date.Format(domain.DateFormat), t)
	return nil
}

// retentionCutoff возвращает нижнюю границу окна хранения для чтения
func (s *Service) retentionCutoff() time.Time {
	now := s.timeProvider.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, -s.retentionMonths, 0)
}
