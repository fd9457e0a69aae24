package get_date_times

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

const (
	msgBadDateFormat = "Неверный формат даты. Используйте YYYY-MM-DD"
	msgLoadFailed    = "Ошибка при получении занятых слотов"
)

// ReservationService интерфейс сервиса записей
type ReservationService interface {
	TimesForDate(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimesResponse HTTP response model
type TimesResponse struct {
	Times []string `json:"times"`
}

// Handler обработчик занятых времён на дату
type Handler struct {
	service ReservationService
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/booked-slots/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := mux.Vars(r)["date"]

	date, err := handlers.ParseDate(dateParam)
	if err != nil {
		h.logger.Warn("GET /booked-slots/{date} - invalid date %q", dateParam)
		handlers.RespondBadRequest(w, msgBadDateFormat)
		return
	}

	times, err := h.service.TimesForDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /booked-slots/{date} - failed to load times for %s: %v", dateParam, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	result := make([]string, 0, len(times))
	for _, t := range times {
		result = append(result, t.String())
	}

	handlers.RespondJSON(w, http.StatusOK, TimesResponse{Times: result})
}
