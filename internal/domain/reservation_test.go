package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/playgrid/turf-booking-service/pkg/types"
)

func TestBookingPlan_IsValid(t *testing.T) {
	assert.True(t, PlanSingle.IsValid())
	assert.True(t, PlanDaily.IsValid())
	assert.True(t, PlanWeekly.IsValid())
	assert.True(t, PlanMonthly.IsValid())

	assert.False(t, BookingPlan("fortnightly").IsValid())
	assert.False(t, BookingPlan("").IsValid())
}

func TestReservation_IsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		r := &Reservation{Status: status}
		assert.True(t, r.IsActive(), "status %s", status)
	}
	for _, status := range InactiveStatuses {
		r := &Reservation{Status: status}
		assert.False(t, r.IsActive(), "status %s", status)
	}
}

func TestReservation_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status ReservationStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelledByUser, false},
		{StatusCancelledByTurf, false},
	}

	for _, tt := range tests {
		r := &Reservation{Status: tt.status}
		assert.Equal(t, tt.want, r.CanBeCancelled(), "status %s", tt.status)
	}
}

func TestReservation_AppliesOn(t *testing.T) {
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	// Не-weekly планы занимают каждую дату диапазона
	for _, plan := range []BookingPlan{PlanSingle, PlanDaily, PlanMonthly} {
		r := &Reservation{Plan: plan}
		assert.True(t, r.AppliesOn(monday), "plan %s", plan)
		assert.True(t, r.AppliesOn(sunday), "plan %s", plan)
	}

	// Weekly занимает только перечисленные дни недели
	weekly := &Reservation{Plan: PlanWeekly, RecurringDays: []int{1, 3}}
	assert.True(t, weekly.AppliesOn(monday))
	assert.False(t, weekly.AppliesOn(tuesday))

	// Воскресенье кодируется нулём
	sundayOnly := &Reservation{Plan: PlanWeekly, RecurringDays: []int{0}}
	assert.True(t, sundayOnly.AppliesOn(sunday))
	assert.False(t, sundayOnly.AppliesOn(monday))

	// Пустой список дней не совпадает ни с одной датой
	empty := &Reservation{Plan: PlanWeekly, RecurringDays: nil}
	assert.False(t, empty.AppliesOn(monday))
	assert.False(t, empty.AppliesOn(sunday))
}

func TestReservation_Interval(t *testing.T) {
	ok := &Reservation{StartTime: "09:00", EndTime: "11:00"}
	start, end, err := ok.Interval()
	assert.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), start)
	assert.Equal(t, types.TimeString("11:00"), end)

	badStart := &Reservation{StartTime: "25:99", EndTime: "11:00"}
	_, _, err = badStart.Interval()
	assert.Error(t, err)

	badEnd := &Reservation{StartTime: "09:00", EndTime: "garbage"}
	_, _, err = badEnd.Interval()
	assert.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     types.TimeString
		want                           bool
	}{
		{"identical intervals", "10:00", "11:00", "10:00", "11:00", true},
		{"partial overlap", "10:00", "11:00", "10:30", "11:30", true},
		{"containment", "09:00", "12:00", "10:00", "11:00", true},
		{"touching end-to-start", "10:00", "11:00", "11:00", "12:00", false},
		{"touching start-to-end", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "06:00", "07:00", "20:00", "21:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
