package domain

import (
	"time"

	"github.com/playgrid/turf-booking-service/pkg/types"
)

// BookingPlan represents the recurrence pattern of a reservation
type BookingPlan string

const (
	PlanSingle  BookingPlan = "single"  // one exact date
	PlanDaily   BookingPlan = "daily"   // every day of the plan range
	PlanWeekly  BookingPlan = "weekly"  // selected weekdays of the plan range
	PlanMonthly BookingPlan = "monthly" // every day of a calendar-month range
)

// IsValid returns true if the plan is one of the known values
func (p BookingPlan) IsValid() bool {
	switch p {
	case PlanSingle, PlanDaily, PlanWeekly, PlanMonthly:
		return true
	}
	return false
}

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending         ReservationStatus = "pending"
	StatusConfirmed       ReservationStatus = "confirmed"
	StatusCompleted       ReservationStatus = "completed"
	StatusCancelledByUser ReservationStatus = "cancelled_by_user"
	StatusCancelledByTurf ReservationStatus = "cancelled_by_turf"
)

// Reservation represents a turf reservation: a time-of-day interval
// [StartTime, EndTime) that recurs over [PlanStartDate, PlanEndDate]
// according to the booking plan
type Reservation struct {
	ID            int64
	UserID        int64
	TurfID        int64
	Plan          BookingPlan
	PlanStartDate time.Time // inclusive; equals PlanEndDate for single plans
	PlanEndDate   time.Time // inclusive
	StartTime     types.TimeString
	EndTime       types.TimeString
	RecurringDays []int // weekdays 0=Sunday..6=Saturday, weekly plans only
	Status        ReservationStatus

	// Denormalized player data for history
	PlayerName  *string
	PlayerPhone *string

	TotalPrice float64
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still blocks slots
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByUser && r.Status != StatusCancelledByTurf
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByUser || r.Status == StatusCancelledByTurf
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// AppliesOn reports whether the reservation occupies its time interval on the
// given date, assuming the date already lies within the plan range.
// Non-weekly plans occupy every date of the range. Weekly plans occupy only
// the weekdays listed in RecurringDays (0=Sunday..6=Saturday, time.Weekday
// encoding). An empty RecurringDays list matches no day regardless of policy;
// the policy only controls whether such a record is reported as malformed.
func (r *Reservation) AppliesOn(date time.Time) bool {
	if r.Plan != PlanWeekly {
		return true
	}

	weekday := int(date.Weekday())
	for _, d := range r.RecurringDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Interval returns the validated [start, end) time-of-day interval.
// An error means the stored times cannot be interpreted and the reservation
// must be excluded from overlap checks
func (r *Reservation) Interval() (start, end types.TimeString, err error) {
	if err := r.StartTime.Validate(); err != nil {
		return "", "", err
	}
	if err := r.EndTime.Validate(); err != nil {
		return "", "", err
	}
	return r.StartTime, r.EndTime, nil
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Touching endpoints do not overlap
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// TurfReservationsFilter фильтр для получения бронирований площадки
type TurfReservationsFilter struct {
	TurfID          int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые бронирования
}
