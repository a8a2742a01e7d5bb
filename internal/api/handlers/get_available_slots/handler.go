package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/turf-booking-service/internal/api/handlers"
	"github.com/playgrid/turf-booking-service/internal/api/middleware"
	getAvailableSlots "github.com/playgrid/turf-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidTurfID  = "некорректный ID площадки"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректная дата, ожидается YYYY-MM-DD"
	msgTurfNotFound   = "площадка не найдена"
	msgTurfInactive   = "площадка недоступна для бронирования"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем turfId из URL
	turfIDStr := vars["turfId"]
	turfID, err := strconv.ParseInt(turfIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/available-slots - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /turfs/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Эндпоинт публичный - userID опционален
	userID, _ := middleware.GetUserID(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, turfID, dateStr)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/available-slots - Invalid date format: date=%s, error=%v", dateStr, err)
		handlers.RespondUnprocessableEntity(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/available-slots - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, getAvailableSlots.ErrTurfInactive):
			h.logger.Warn("GET /turfs/{id}/available-slots - Turf inactive: turf_id=%d", turfID)
			handlers.RespondUnprocessableEntity(w, msgTurfInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /turfs/{id}/available-slots - Invalid date: turf_id=%d, date=%s", turfID, dateStr)
			handlers.RespondUnprocessableEntity(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{id}/available-slots - Invalid input: turf_id=%d", turfID)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /turfs/{id}/available-slots - Failed to get slots: turf_id=%d, date=%s, error=%v",
				turfID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /turfs/{id}/available-slots - Slots retrieved successfully: turf_id=%d, date=%s, booked_count=%d",
		turfID, dateStr, result.BookedCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
