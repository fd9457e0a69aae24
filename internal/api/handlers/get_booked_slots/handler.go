package get_booked_slots

import (
	"context"
	"net/http"
	"time"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

const (
	msgBadDateFormat = "Неверный формат даты. Используйте YYYY-MM-DD"
	msgLoadFailed    = "Ошибка при получении занятых слотов"
)

// ReservationService интерфейс сервиса записей
type ReservationService interface {
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик списка занятых слотов
type Handler struct {
	service ReservationService
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/booked-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		reservations []*domain.Reservation
		err          error
	)

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, parseErr := handlers.ParseDate(dateParam)
		if parseErr != nil {
			h.logger.Warn("GET /booked-slots - invalid date param %q", dateParam)
			handlers.RespondBadRequest(w, msgBadDateFormat)
			return
		}
		reservations, err = h.service.ListForDate(r.Context(), date)
	} else {
		reservations, err = h.service.List(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /booked-slots - failed to load reservations: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromReservations(reservations))
}
