package create_booking

import (
	"time"

	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

// Request модель запроса на бронирование
type Request struct {
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала первого слота
	DurationMinutes int              // Длительность процедуры; 0 = один слот
	Name            *string          // Имя клиента (опционально)
	Phone           *string          // Телефон клиента (опционально)
	Service         *string          // Описание услуги (опционально)
}

// Response модель ответа с созданными записями
type Response struct {
	AppointmentID string
	Slots         []BookedSlot
}

// BookedSlot одна созданная запись
type BookedSlot struct {
	Date     time.Time
	Time     types.TimeString
	Name     *string
	Phone    *string
	Service  *string
	BookedAt time.Time
}
