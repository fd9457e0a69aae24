package delete_working_day

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
)

const (
	msgBadDateFormat = "Неверный формат даты. Используйте YYYY-MM-DD"
	msgDeleteFailed  = "Ошибка при удалении переопределения"
)

// WorkingDayService интерфейс сервиса рабочих дней
type WorkingDayService interface {
	ClearOverride(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SuccessResponse HTTP response model
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Handler обработчик снятия переопределения рабочего дня
type Handler struct {
	service WorkingDayService
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(service WorkingDayService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle DELETE /api/working-days/{date}
// Маршрут защищён админским токеном (middleware.AdminAuth)
// Операция идемпотентна: отсутствие переопределения не является ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := mux.Vars(r)["date"]

	date, err := handlers.ParseDate(dateParam)
	if err != nil {
		handlers.RespondBadRequest(w, msgBadDateFormat)
		return
	}

	if err := h.service.ClearOverride(r.Context(), date); err != nil {
		h.logger.Error("DELETE /working-days - failed to clear %s: %v", dateParam, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgDeleteFailed)
		return
	}

	h.logger.Info("DELETE /working-days - %s reverted to automatic", dateParam)
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
