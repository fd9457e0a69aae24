package domain

import (
	"time"

	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

// Reservation represents one booked half-hour slot
// A multi-slot appointment is stored as several rows sharing one AppointmentID
type Reservation struct {
	ID            int64
	AppointmentID string // groups slot rows of one booking
	Date          time.Time
	Time          types.TimeString

	// Client metadata, optional (admin-only visibility)
	Name    *string
	Phone   *string
	Service *string

	BookedAt time.Time
}

// Key возвращает уникальный ключ слота (date, time)
func (r *Reservation) Key() SlotKey {
	return SlotKey{Date: r.Date.Format(DateFormat), Time: r.Time}
}

// SlotKey идентификатор одного получасового слота
type SlotKey struct {
	Date string // YYYY-MM-DD
	Time types.TimeString
}

// String возвращает ключ в виде "YYYY-MM-DD HH:MM"
func (k SlotKey) String() string {
	return k.Date + " " + k.Time.String()
}
