package update_turf_schedule

import (
	"github.com/playgrid/turf-booking-service/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	OpenHour            int `json:"open_hour"`
	CloseHour           int `json:"close_hour"`
	SlotDurationMinutes int `json:"slot_duration_minutes"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(turfID, userID int64) *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		UserID:              userID,
		TurfID:              turfID,
		OpenHour:            r.OpenHour,
		CloseHour:           r.CloseHour,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}
