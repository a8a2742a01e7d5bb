package domain

import "time"

// TurfSchedule represents the operating window and slot granularity of a turf.
// Supports two-level configuration:
// 1. Turf-specific (turf_id set)
// 2. Owner-wide default (turf_id NULL) — applies to all turfs of the owner
// When neither exists, the built-in defaults from constants.go are used
type TurfSchedule struct {
	ID                  int64
	TurfID              *int64 // NULL = owner-wide default
	OwnerID             int64
	OpenHour            int // first bookable hour (inclusive)
	CloseHour           int // end of the operating window (exclusive for slots)
	SlotDurationMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsOwnerDefault returns true if this schedule applies to all turfs of the owner
func (s *TurfSchedule) IsOwnerDefault() bool {
	return s.TurfID == nil
}

// WindowMinutes returns the length of the operating window in minutes
func (s *TurfSchedule) WindowMinutes() int {
	return (s.CloseHour - s.OpenHour) * 60
}

// SlotsPerDay returns the number of whole slots that fit into the window
func (s *TurfSchedule) SlotsPerDay() int {
	if s.SlotDurationMinutes <= 0 {
		return 0
	}
	return s.WindowMinutes() / s.SlotDurationMinutes
}

// DefaultSchedule returns the built-in operating window: hourly slots from
// 06:00 to 23:00
func DefaultSchedule(ownerID int64) *TurfSchedule {
	return &TurfSchedule{
		OwnerID:             ownerID,
		OpenHour:            DefaultOpenHour,
		CloseHour:           DefaultCloseHour,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}
