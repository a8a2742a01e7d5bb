package models

import (
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
)

// Request модели

// UpsertScheduleRequest запрос на создание или обновление расписания площадки
type UpsertScheduleRequest struct {
	UserID              int64 `json:"user_id"`
	TurfID              int64 `json:"turf_id"`
	OpenHour            int   `json:"open_hour"`
	CloseHour           int   `json:"close_hour"`
	SlotDurationMinutes int   `json:"slot_duration_minutes"`
}

// Response модели

// ScheduleResponse ответ с параметрами расписания площадки
type ScheduleResponse struct {
	TurfID              int64  `json:"turf_id"`
	OpenHour            int    `json:"open_hour"`
	CloseHour           int    `json:"close_hour"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	SlotsPerDay         int    `json:"slots_per_day"`
	Source              string `json:"source"` // "turf" | "owner" | "default"

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// FromDomainSchedule конвертирует domain модель в DTO
// source указывает уровень, с которого взято расписание
func FromDomainSchedule(s *domain.TurfSchedule, turfID int64, source string) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		TurfID:              turfID,
		OpenHour:            s.OpenHour,
		CloseHour:           s.CloseHour,
		SlotDurationMinutes: s.SlotDurationMinutes,
		SlotsPerDay:         s.SlotsPerDay(),
		Source:              source,
	}

	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = &s.CreatedAt
		resp.UpdatedAt = &s.UpdatedAt
	}

	return resp
}
