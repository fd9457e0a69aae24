package create_booking

import (
	"fmt"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до захвата блокировок и обращения к хранилищу
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	if req.Name != nil && len(*req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long (max %d)", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Phone != nil && len(*req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long (max %d)", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Service != nil && len(*req.Service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service is too long (max %d)", ErrInvalidInput, domain.MaxServiceLength)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
// Сравниваются календарные компоненты, а не моменты времени: дата брони
// разобрана в UTC, а "сейчас" живёт в зоне сервера
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
