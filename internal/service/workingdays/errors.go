package workingdays

import "errors"

var (
	// ErrInvalidStatus возвращается при неизвестном статусе дня
	ErrInvalidStatus = errors.New(`workingdays.service: status must be "working" or "off"`)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("workingdays.service: internal error")
)
