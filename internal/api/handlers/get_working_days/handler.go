package get_working_days

import (
	"context"
	"net/http"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
	"github.com/antoniozubakha/salon-booking-service/internal/domain"
)

const msgLoadFailed = "Ошибка при получении рабочих дней"

// WorkingDayService интерфейс сервиса рабочих дней
type WorkingDayService interface {
	Overrides(ctx context.Context) (map[string]domain.DayStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// OverridesResponse HTTP response model
type OverridesResponse struct {
	Overrides map[string]domain.DayStatus `json:"overrides"`
}

// Handler обработчик списка переопределений рабочих дней
type Handler struct {
	service WorkingDayService
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(service WorkingDayService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/working-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.service.Overrides(r.Context())
	if err != nil {
		h.logger.Error("GET /working-days - failed to load overrides: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, OverridesResponse{Overrides: overrides})
}
