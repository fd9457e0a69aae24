package delete_booked_slot

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
	"github.com/antoniozubakha/salon-booking-service/internal/service/reservations"
	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

const (
	msgBadDateFormat = "Неверный формат даты. Используйте YYYY-MM-DD"
	msgBadTimeFormat = "Неверный формат времени. Используйте HH:MM"
	msgNotFound      = "Запись не найдена"
	msgDeleteFailed  = "Ошибка при удалении записи"
)

// ReservationService интерфейс сервиса записей
type ReservationService interface {
	Release(ctx context.Context, date time.Time, t types.TimeString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SuccessResponse HTTP response model
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Handler обработчик административного освобождения слота
type Handler struct {
	service ReservationService
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle DELETE /api/booked-slots/{date}/{time}
// Маршрут защищён админским токеном (middleware.AdminAuth)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := handlers.ParseDate(vars["date"])
	if err != nil {
		handlers.RespondBadRequest(w, msgBadDateFormat)
		return
	}

	slotTime, err := handlers.ParseTime(vars["time"])
	if err != nil {
		handlers.RespondBadRequest(w, msgBadTimeFormat)
		return
	}

	if err := h.service.Release(r.Context(), date, slotTime); err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("DELETE /booked-slots - reservation %s %s not found", vars["date"], vars["time"])
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /booked-slots - failed to release %s %s: %v", vars["date"], vars["time"], err)
		handlers.RespondError(w, http.StatusInternalServerError, msgDeleteFailed)
		return
	}

	h.logger.Info("DELETE /booked-slots - reservation %s %s released", vars["date"], vars["time"])
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
