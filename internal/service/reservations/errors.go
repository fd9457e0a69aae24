package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда запись не найдена
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("reservations.service: internal error")
)
