package set_working_day

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/internal/service/workingdays"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBadDateFormat      = "Неверный формат даты. Используйте YYYY-MM-DD"
	msgInvalidStatus      = `Статус должен быть "working" или "off"`
	msgSaveFailed         = "Ошибка при сохранении статуса дня"
)

// WorkingDayService интерфейс сервиса рабочих дней
type WorkingDayService interface {
	SetOverride(ctx context.Context, date time.Time, status domain.DayStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"` // "working" | "off"
}

// SetStatusResponse HTTP response model
type SetStatusResponse struct {
	Success bool   `json:"success"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// Handler обработчик установки статуса дня
type Handler struct {
	service WorkingDayService
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(service WorkingDayService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/working-days/{date}
// Маршрут защищён админским токеном (middleware.AdminAuth)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := mux.Vars(r)["date"]

	date, err := handlers.ParseDate(dateParam)
	if err != nil {
		handlers.RespondBadRequest(w, msgBadDateFormat)
		return
	}

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /working-days - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status := domain.DayStatus(req.Status)
	if err := h.service.SetOverride(r.Context(), date, status); err != nil {
		if errors.Is(err, workingdays.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("POST /working-days - failed to set %s=%s: %v", dateParam, req.Status, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	h.logger.Info("POST /working-days - %s set to %s", dateParam, req.Status)
	handlers.RespondJSON(w, http.StatusOK, SetStatusResponse{
		Success: true,
		Date:    dateParam,
		Status:  req.Status,
	})
}
