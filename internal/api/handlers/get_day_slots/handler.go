package get_day_slots

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	getDaySlots "github.com/antoniozubakha/salon-booking-service/internal/usecase/get_day_slots"
)

const (
	msgBadDateFormat = "Неверный формат даты. Используйте YYYY-MM-DD"
	msgLoadFailed    = "Ошибка при получении расписания дня"
)

// GetDaySlotsUseCase интерфейс use case расписания дня
type GetDaySlotsUseCase interface {
	Execute(ctx context.Context, req *getDaySlots.Request) (*getDaySlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SlotResponse один слот дня
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date    string         `json:"date"`
	Working bool           `json:"working"`
	Slots   []SlotResponse `json:"slots"`
}

// Handler обработчик расписания дня для клиентского календаря
type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/day-slots/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := mux.Vars(r)["date"]

	date, err := handlers.ParseDate(dateParam)
	if err != nil {
		h.logger.Warn("GET /day-slots - invalid date %q", dateParam)
		handlers.RespondBadRequest(w, msgBadDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /day-slots - failed for %s: %v", dateParam, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotResponse{Time: s.Time.String(), Available: s.Available})
	}

	handlers.RespondJSON(w, http.StatusOK, DaySlotsResponse{
		Date:    result.Date.Format(domain.DateFormat),
		Working: result.Working,
		Slots:   slots,
	})
}
