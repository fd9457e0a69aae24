package handlers

import (
	"errors"
	"regexp"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

var (
	// ErrBadDateFormat дата не соответствует шаблону YYYY-MM-DD
	ErrBadDateFormat = errors.New("handlers: date does not match YYYY-MM-DD")

	// ErrBadDate дата соответствует шаблону, но не существует в календаре
	ErrBadDate = errors.New("handlers: date is not a valid calendar date")

	// ErrBadTimeFormat время не соответствует шаблону HH:MM
	ErrBadTimeFormat = errors.New("handlers: time does not match HH:MM")

	// ErrBadTime время соответствует шаблону, но вне диапазона 00:00-23:59
	ErrBadTime = errors.New("handlers: time is out of range")
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ParseDate разбирает дату формата YYYY-MM-DD
// Ошибка формата и несуществующая дата различаются для точных сообщений
func ParseDate(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, ErrBadDateFormat
	}

	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}

	return date, nil
}

// ParseTime разбирает время формата HH:MM (часы 0-23, минуты 0-59)
func ParseTime(s string) (types.TimeString, error) {
	if !timeRe.MatchString(s) {
		return "", ErrBadTimeFormat
	}

	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", ErrBadTime
	}

	return t, nil
}
