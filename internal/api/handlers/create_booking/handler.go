package create_booking

import (
	"errors"
	"net/http"

	"github.com/playgrid/turf-booking-service/internal/api/handlers"
	"github.com/playgrid/turf-booking-service/internal/api/middleware"
	createBooking "github.com/playgrid/turf-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDate       = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidTime       = "некорректное время, ожидается HH:MM"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgTurfNotFound      = "площадка не найдена"
	msgTurfInactive      = "площадка недоступна для бронирования"
	msgInvalidRequest    = "некорректные параметры бронирования"
	msgInvalidTimeRange  = "время окончания должно быть позже времени начала"
	msgInvalidRecurrence = "для еженедельного плана нужно указать дни недели"
	msgSlotNotAvailable  = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем тело запроса
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Конвертируем в запрос use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time format: user_id=%d, error=%v", userID, err)
		handlers.RespondUnprocessableEntity(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTurfNotFound):
			h.logger.Warn("POST /bookings - Turf not found: turf_id=%d, user_id=%d", req.TurfID, userID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, createBooking.ErrTurfInactive):
			h.logger.Warn("POST /bookings - Turf inactive: turf_id=%d, user_id=%d", req.TurfID, userID)
			handlers.RespondUnprocessableEntity(w, msgTurfInactive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: turf_id=%d, user_id=%d, error=%v", req.TurfID, userID, err)
			handlers.RespondUnprocessableEntity(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: turf_id=%d, user_id=%d", req.TurfID, userID)
			handlers.RespondUnprocessableEntity(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidRecurrence):
			h.logger.Warn("POST /bookings - Invalid recurrence: turf_id=%d, user_id=%d, days=%v",
				req.TurfID, userID, req.RecurringDays)
			handlers.RespondUnprocessableEntity(w, msgInvalidRecurrence)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: turf_id=%d, user_id=%d, error=%v", req.TurfID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: turf_id=%d, user_id=%d, start=%s, end=%s",
				req.TurfID, userID, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: turf_id=%d, user_id=%d, error=%v",
				req.TurfID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, turf_id=%d, user_id=%d, plan=%s",
		result.ID, req.TurfID, userID, req.Plan)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
