package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reservation(plan domain.BookingPlan, start, end string, days []int) *domain.Reservation {
	return &domain.Reservation{
		ID:            1,
		Plan:          plan,
		PlanStartDate: date(2024, 3, 1),
		PlanEndDate:   date(2024, 3, 31),
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
		RecurringDays: days,
		Status:        domain.StatusConfirmed,
	}
}

func TestBuildSlotGrid_DefaultScheduleProducesSeventeenSlots(t *testing.T) {
	schedule := domain.DefaultSchedule(1)

	slots, err := buildSlotGrid(schedule, nil)
	require.NoError(t, err)

	require.Len(t, slots, 17)
	assert.Equal(t, types.TimeString("06:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("07:00"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("22:00"), slots[16].StartTime)
	assert.Equal(t, types.TimeString("23:00"), slots[16].EndTime)

	// Сетка непрерывна: конец каждого слота равен началу следующего
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime)
	}

	// Без бронирований все слоты свободны
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestBuildSlotGrid_ExactSlotBookingBlocksOnlyThatSlot(t *testing.T) {
	schedule := domain.DefaultSchedule(1)
	booked := []*domain.Reservation{
		reservation(domain.PlanSingle, "10:00", "11:00", nil),
	}

	slots, err := buildSlotGrid(schedule, booked)
	require.NoError(t, err)
	require.Len(t, slots, 17)

	for _, slot := range slots {
		switch slot.StartTime {
		case "10:00":
			assert.False(t, slot.Available, "slot 10:00-11:00 must be booked")
		case "09:00":
			// Граничащий слева слот не пересекается: полуоткрытые интервалы
			assert.True(t, slot.Available, "slot 09:00-10:00 only touches the booking")
		case "11:00":
			assert.True(t, slot.Available, "slot 11:00-12:00 only touches the booking")
		default:
			assert.True(t, slot.Available)
		}
	}
}

func TestBuildSlotGrid_MultiSlotBookingBlocksAllCoveredSlots(t *testing.T) {
	schedule := domain.DefaultSchedule(1)
	booked := []*domain.Reservation{
		reservation(domain.PlanSingle, "09:00", "12:00", nil),
	}

	slots, err := buildSlotGrid(schedule, booked)
	require.NoError(t, err)

	blocked := 0
	for _, slot := range slots {
		if !slot.Available {
			blocked++
			assert.Contains(t, []types.TimeString{"09:00", "10:00", "11:00"}, slot.StartTime)
		}
	}
	assert.Equal(t, 3, blocked)
}

func TestBuildSlotGrid_PartialOverlapBlocksBothSlots(t *testing.T) {
	schedule := domain.DefaultSchedule(1)
	booked := []*domain.Reservation{
		reservation(domain.PlanSingle, "10:30", "11:30", nil),
	}

	slots, err := buildSlotGrid(schedule, booked)
	require.NoError(t, err)

	for _, slot := range slots {
		switch slot.StartTime {
		case "10:00", "11:00":
			assert.False(t, slot.Available)
		default:
			assert.True(t, slot.Available)
		}
	}
}

func TestBuildSlotGrid_CustomScheduleWindow(t *testing.T) {
	schedule := &domain.TurfSchedule{
		OwnerID:             1,
		OpenHour:            8,
		CloseHour:           20,
		SlotDurationMinutes: 90,
	}

	slots, err := buildSlotGrid(schedule, nil)
	require.NoError(t, err)

	// 12 часов / 90 минут = 8 слотов, последний заканчивается ровно в 20:00
	require.Len(t, slots, 8)
	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:00"), slots[7].EndTime)
}

func TestBuildSlotGrid_Deterministic(t *testing.T) {
	schedule := domain.DefaultSchedule(1)
	booked := []*domain.Reservation{
		reservation(domain.PlanSingle, "10:00", "11:00", nil),
		reservation(domain.PlanDaily, "18:00", "20:00", nil),
	}

	first, err := buildSlotGrid(schedule, booked)
	require.NoError(t, err)
	second, err := buildSlotGrid(schedule, booked)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApplicableReservations_WeeklyOnlyOnRecurringDays(t *testing.T) {
	// 2024-03-04 - понедельник, 2024-03-05 - вторник, 2024-03-06 - среда
	weekly := reservation(domain.PlanWeekly, "10:00", "11:00", []int{1, 3})

	monday := applicableReservations([]*domain.Reservation{weekly}, date(2024, 3, 4),
		domain.EmptyRecurrenceBlocksNothing, nopLogger{})
	assert.Len(t, monday, 1)

	tuesday := applicableReservations([]*domain.Reservation{weekly}, date(2024, 3, 5),
		domain.EmptyRecurrenceBlocksNothing, nopLogger{})
	assert.Empty(t, tuesday)

	wednesday := applicableReservations([]*domain.Reservation{weekly}, date(2024, 3, 6),
		domain.EmptyRecurrenceBlocksNothing, nopLogger{})
	assert.Len(t, wednesday, 1)
}

func TestApplicableReservations_SundayUsesZeroEncoding(t *testing.T) {
	// 2024-03-03 - воскресенье, кодируется как 0
	weekly := reservation(domain.PlanWeekly, "10:00", "11:00", []int{0})

	sunday := applicableReservations([]*domain.Reservation{weekly}, date(2024, 3, 3),
		domain.EmptyRecurrenceBlocksNothing, nopLogger{})
	assert.Len(t, sunday, 1)

	monday := applicableReservations([]*domain.Reservation{weekly}, date(2024, 3, 4),
		domain.EmptyRecurrenceBlocksNothing, nopLogger{})
	assert.Empty(t, monday)
}

func TestApplicableReservations_EmptyRecurringDaysBlocksNothing(t *testing.T) {
	weekly := reservation(domain.PlanWeekly, "10:00", "11:00", nil)

	// Обе политики исключают запись из расчета; отличается только логирование
	for _, policy := range []domain.EmptyRecurrencePolicy{
		domain.EmptyRecurrenceBlocksNothing,
		domain.EmptyRecurrenceIsInvalid,
	} {
		applicable := applicableReservations([]*domain.Reservation{weekly}, date(2024, 3, 6),
			policy, nopLogger{})
		assert.Empty(t, applicable, "policy=%s", policy)
	}
}

func TestApplicableReservations_MalformedTimeExcluded(t *testing.T) {
	malformed := reservation(domain.PlanSingle, "25:99", "11:00", nil)
	valid := reservation(domain.PlanSingle, "10:00", "11:00", nil)
	valid.ID = 2

	applicable := applicableReservations([]*domain.Reservation{malformed, valid}, date(2024, 3, 6),
		domain.EmptyRecurrenceBlocksNothing, nopLogger{})

	// Битая запись не блокирует слоты и не попадает в booked_count
	require.Len(t, applicable, 1)
	assert.Equal(t, int64(2), applicable[0].ID)
}

func TestApplicableReservations_NonWeeklyAlwaysApplies(t *testing.T) {
	daily := reservation(domain.PlanDaily, "10:00", "11:00", nil)
	monthly := reservation(domain.PlanMonthly, "12:00", "13:00", nil)

	applicable := applicableReservations([]*domain.Reservation{daily, monthly}, date(2024, 3, 5),
		domain.EmptyRecurrenceBlocksNothing, nopLogger{})
	assert.Len(t, applicable, 2)
}
