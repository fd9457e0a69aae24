package workingdays

import (
	"context"
	"fmt"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/calendar"
	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

// Service сервис рабочих дней: базовый календарь плюс админские переопределения
// Эффективный статус даты = переопределение, если оно есть, иначе календарь
type Service struct {
	repo   OverrideRepository
	policy calendar.Policy
	logger Logger
}

// NewService создает новый экземпляр сервиса рабочих дней
func NewService(repo OverrideRepository, policy calendar.Policy, logger Logger) *Service {
	return &Service{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

// Overrides возвращает все переопределения в виде карты "дата -> статус"
func (s *Service) Overrides(ctx context.Context) (map[string]domain.DayStatus, error) {
	overrides, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Overrides: failed to load overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to load overrides: %v", ErrInternal, err)
	}

	result := make(map[string]domain.DayStatus, len(overrides))
	for _, o := range overrides {
		result[o.Date.Format(domain.DateFormat)] = o.Status
	}

	return result, nil
}

// SetOverride устанавливает явный статус дня
// Запись в память не делается до подтверждённой записи в хранилище
func (s *Service) SetOverride(ctx context.Context, date time.Time, status domain.DayStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	if err := s.repo.Upsert(ctx, date, status); err != nil {
		s.logger.Error("SetOverride: failed to save override %s=%s: %v",
			date.Format(domain.DateFormat), status, err)
		return fmt.Errorf("%w: failed to save override: %v", ErrInternal, err)
	}

	s.logger.Info("SetOverride: %s set to %s", date.Format(domain.DateFormat), status)
	return nil
}

// ClearOverride удаляет переопределение, возвращая день к автоматической
// классификации; идемпотентна — отсутствие переопределения не ошибка
func (s *Service) ClearOverride(ctx context.Context, date time.Time) error {
	if err := s.repo.Delete(ctx, date); err != nil {
		s.logger.Error("ClearOverride: failed to delete override %s: %v",
			date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: failed to delete override: %v", ErrInternal, err)
	}

	s.logger.Info("ClearOverride: %s reverted to automatic", date.Format(domain.DateFormat))
	return nil
}

// IsWorkingDay возвращает эффективный статус даты
func (s *Service) IsWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	overrides, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("IsWorkingDay: failed to load overrides: %v", err)
		return false, fmt.Errorf("%w: failed to load overrides: %v", ErrInternal, err)
	}

	for _, o := range overrides {
		if sameDay(o.Date, date) {
			return o.Status == domain.DayStatusWorking, nil
		}
	}

	return s.policy.IsBaseWorkingDay(date), nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
