package create_booking

import (
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	createBooking "github.com/antoniozubakha/salon-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string  `json:"date"` // "2025-10-15"
	Time            string  `json:"time"` // "10:00"
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Service         *string `json:"service,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
}

// SlotResponse одна созданная запись в HTTP-ответе
type SlotResponse struct {
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Service       *string `json:"service,omitempty"`
	BookedAt      string  `json:"bookedAt"`
	AppointmentID string  `json:"appointmentId"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success bool           `json:"success"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Date:          s.Date.Format(domain.DateFormat),
			Time:          s.Time.String(),
			Name:          s.Name,
			Phone:         s.Phone,
			Service:       s.Service,
			BookedAt:      s.BookedAt.Format(time.RFC3339),
			AppointmentID: resp.AppointmentID,
		})
	}

	return &CreateBookingResponse{
		Success: true,
		Slots:   slots,
	}
}
