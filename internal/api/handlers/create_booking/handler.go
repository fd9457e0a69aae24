package create_booking

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
	"github.com/antoniozubakha/salon-booking-service/internal/api/middleware"
	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	createBooking "github.com/antoniozubakha/salon-booking-service/internal/usecase/create_booking"
	"github.com/antoniozubakha/salon-booking-service/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDateTimeRequired   = "Дата и время обязательны"
	msgBadDateFormat      = "Неверный формат даты. Используйте YYYY-MM-DD"
	msgInvalidDate        = "Невалидная дата"
	msgBadTimeFormat      = "Неверный формат времени. Используйте HH:MM"
	msgInvalidTime        = "Невалидное время"
	msgNameTooLong        = "Имя слишком длинное"
	msgPhoneTooLong       = "Телефон слишком длинный"
	msgServiceTooLong     = "Название услуги слишком длинное"
	msgPastDate           = "Нельзя бронировать на прошедшую дату"
	msgWontFit            = "Выбранные процедуры не поместятся в рабочее время, так как закончатся после 21:00. Пожалуйста, выберите более ранний временной слот"
	msgSaveFailed         = "Ошибка при сохранении записи"

	msgSlotHeldFmt  = "Время %s уже занято или обрабатывается другим запросом"
	msgSlotTakenFmt = "Время %s уже занято"
)

// Handler обработчик создания записи
type Handler struct {
	useCase    CreateBookingUseCase
	adminToken string
	logger     Logger
}

// NewHandler создает новый экземпляр обработчика
// adminToken нужен, чтобы закрытие слота администратором шло тем же путём:
// запрос с валидным токеном и без имени получает синтетическое имя клиента
func NewHandler(useCase CreateBookingUseCase, adminToken string, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		adminToken: adminToken,
		logger:     logger,
	}
}

// Handle POST /api/booked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booked-slots - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date == "" || req.Time == "" {
		handlers.RespondBadRequest(w, msgDateTimeRequired)
		return
	}

	date, err := handlers.ParseDate(req.Date)
	if err != nil {
		if errors.Is(err, handlers.ErrBadDateFormat) {
			handlers.RespondBadRequest(w, msgBadDateFormat)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	startTime, err := handlers.ParseTime(req.Time)
	if err != nil {
		if errors.Is(err, handlers.ErrBadTimeFormat) {
			handlers.RespondBadRequest(w, msgBadTimeFormat)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	if req.Name != nil && len(*req.Name) > domain.MaxNameLength {
		handlers.RespondBadRequest(w, msgNameTooLong)
		return
	}
	if req.Phone != nil && len(*req.Phone) > domain.MaxPhoneLength {
		handlers.RespondBadRequest(w, msgPhoneTooLong)
		return
	}
	if req.Service != nil && len(*req.Service) > domain.MaxServiceLength {
		handlers.RespondBadRequest(w, msgServiceTooLong)
		return
	}

	name := req.Name
	if name == nil && h.isAdminRequest(r) {
		// Админ закрывает слот тем же маршрутом, что и клиентские записи
		name = ptr.Ptr(domain.AdminClientName)
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: req.DurationMinutes,
		Name:            name,
		Phone:           req.Phone,
		Service:         req.Service,
	})
	if err != nil {
		h.respondUseCaseError(w, &req, err)
		return
	}

	h.logger.Info("POST /booked-slots - appointment %s created: date=%s, time=%s, slots=%d",
		result.AppointmentID, req.Date, req.Time, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	var conflict *createBooking.SlotConflictError

	switch {
	case errors.As(err, &conflict):
		h.logger.Warn("POST /booked-slots - conflict: date=%s, slot=%s", req.Date, conflict.Slot)
		if conflict.Held {
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(msgSlotHeldFmt, conflict.Slot))
		} else {
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(msgSlotTakenFmt, conflict.Slot))
		}

	case errors.Is(err, createBooking.ErrDateInPast):
		handlers.RespondBadRequest(w, msgPastDate)

	case errors.Is(err, createBooking.ErrWontFit):
		handlers.RespondBadRequest(w, msgWontFit)

	case errors.Is(err, createBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, createBooking.ErrStorage):
		h.logger.Error("POST /booked-slots - storage failure: date=%s, time=%s: %v", req.Date, req.Time, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgSaveFailed)

	default:
		h.logger.Error("POST /booked-slots - failed to create booking: date=%s, time=%s: %v",
			req.Date, req.Time, err)
		handlers.RespondInternalError(w)
	}
}

// isAdminRequest проверяет админский токен без отклонения запроса:
// эндпоинт публичный, токен лишь переключает синтетические метаданные
func (h *Handler) isAdminRequest(r *http.Request) bool {
	if h.adminToken == "" {
		return false
	}
	token := r.Header.Get(middleware.AdminTokenHeader)
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) == 1
}
