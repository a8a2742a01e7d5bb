package get_turf_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/turf-booking-service/internal/api/handlers"
	"github.com/playgrid/turf-booking-service/internal/service/schedule"
)

const (
	msgInvalidTurfID = "некорректный ID площадки"
	msgTurfNotFound  = "площадка не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем turfId из URL
	vars := mux.Vars(r)
	turfIDStr := vars["turfId"]

	turfID, err := strconv.ParseInt(turfIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/schedule - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	// Получаем действующее расписание площадки
	result, err := h.service.GetForTurf(r.Context(), turfID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/schedule - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		default:
			h.logger.Error("GET /turfs/{id}/schedule - Failed to get schedule: turf_id=%d, error=%v",
				turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/{id}/schedule - Schedule retrieved successfully: turf_id=%d, source=%s",
		turfID, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
