package get_booked_slots

import (
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

// ReservationResponse одна запись в HTTP-ответе
type ReservationResponse struct {
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Service       *string `json:"service,omitempty"`
	BookedAt      string  `json:"bookedAt"`
	AppointmentID string  `json:"appointmentId"`
}

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	BookedSlots []ReservationResponse `json:"bookedSlots"`
}

// FromReservations конвертирует доменные записи в HTTP response
func FromReservations(reservations []*domain.Reservation) *BookedSlotsResponse {
	slots := make([]ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		slots = append(slots, ReservationResponse{
			Date:          res.Date.Format(domain.DateFormat),
			Time:          res.Time.String(),
			Name:          res.Name,
			Phone:         res.Phone,
			Service:       res.Service,
			BookedAt:      res.BookedAt.Format(time.RFC3339),
			AppointmentID: res.AppointmentID,
		})
	}

	return &BookedSlotsResponse{BookedSlots: slots}
}
