package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validSingleRequest() *Request {
	return &Request{
		UserID:    1,
		TurfID:    42,
		Plan:      domain.PlanSingle,
		StartDate: date(2024, 3, 6),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	}
}

func TestValidateRequest_ValidSingle(t *testing.T) {
	assert.NoError(t, validateRequest(validSingleRequest()))
}

func TestValidateRequest_UnknownPlan(t *testing.T) {
	req := validSingleRequest()
	req.Plan = "fortnightly"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_EndTimeBeforeStartTime(t *testing.T) {
	req := validSingleRequest()
	req.StartTime = types.TimeString("11:00")
	req.EndTime = types.TimeString("10:00")
	assert.ErrorIs(t, validateRequest(req), ErrInvalidTimeRange)
}

func TestValidateRequest_EqualTimesRejected(t *testing.T) {
	req := validSingleRequest()
	req.EndTime = req.StartTime
	assert.ErrorIs(t, validateRequest(req), ErrInvalidTimeRange)
}

func TestValidateRequest_WeeklyRequiresRecurringDays(t *testing.T) {
	req := validSingleRequest()
	req.Plan = domain.PlanWeekly
	req.EndDate = date(2024, 3, 31)

	// Пустой список дней отклоняется при создании, а не хранится как мусор
	assert.ErrorIs(t, validateRequest(req), ErrInvalidRecurrence)

	req.RecurringDays = []int{1, 3}
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_RecurringDayOutOfRange(t *testing.T) {
	req := validSingleRequest()
	req.Plan = domain.PlanWeekly
	req.EndDate = date(2024, 3, 31)
	req.RecurringDays = []int{7}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidRecurrence)

	req.RecurringDays = []int{-1}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidRecurrence)
}

func TestValidateRequest_RecurringDaysOnlyForWeekly(t *testing.T) {
	req := validSingleRequest()
	req.Plan = domain.PlanDaily
	req.EndDate = date(2024, 3, 10)
	req.RecurringDays = []int{1}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidRecurrence)
}

func TestValidateRequest_EndDateRequiredForRangePlans(t *testing.T) {
	req := validSingleRequest()
	req.Plan = domain.PlanDaily
	assert.ErrorIs(t, validateRequest(req), ErrInvalidDate)

	req.EndDate = date(2024, 3, 5) // раньше начала
	assert.ErrorIs(t, validateRequest(req), ErrInvalidDate)
}

func TestValidateDateNotInPast(t *testing.T) {
	now := time.Date(2024, 3, 6, 15, 30, 0, 0, time.UTC)

	// Сегодняшняя дата допустима независимо от времени суток
	assert.NoError(t, validateDateNotInPast(date(2024, 3, 6), now))
	assert.NoError(t, validateDateNotInPast(date(2024, 3, 7), now))
	assert.ErrorIs(t, validateDateNotInPast(date(2024, 3, 5), now), ErrInvalidDate)
}

func TestValidateWithinWindow(t *testing.T) {
	schedule := domain.DefaultSchedule(1)

	assert.NoError(t, validateWithinWindow(schedule, "06:00", "07:00"))
	assert.NoError(t, validateWithinWindow(schedule, "22:00", "23:00"))
	assert.NoError(t, validateWithinWindow(schedule, "09:00", "12:00"))

	// До открытия и после закрытия
	assert.ErrorIs(t, validateWithinWindow(schedule, "05:00", "06:00"), ErrInvalidTimeRange)
	assert.ErrorIs(t, validateWithinWindow(schedule, "22:00", "23:30"), ErrInvalidTimeRange)

	// Не по границам слотов
	assert.ErrorIs(t, validateWithinWindow(schedule, "10:30", "11:30"), ErrInvalidTimeRange)
	assert.ErrorIs(t, validateWithinWindow(schedule, "10:00", "11:30"), ErrInvalidTimeRange)
}

func TestExpandPlanDates_Single(t *testing.T) {
	dates := expandPlanDates(domain.PlanSingle, date(2024, 3, 6), date(2024, 3, 6), nil)
	require.Len(t, dates, 1)
	assert.Equal(t, date(2024, 3, 6), dates[0])
}

func TestExpandPlanDates_DailyCoversEveryDate(t *testing.T) {
	dates := expandPlanDates(domain.PlanDaily, date(2024, 3, 1), date(2024, 3, 7), nil)
	require.Len(t, dates, 7)
	assert.Equal(t, date(2024, 3, 1), dates[0])
	assert.Equal(t, date(2024, 3, 7), dates[6])
}

func TestExpandPlanDates_WeeklyOnlySelectedWeekdays(t *testing.T) {
	// Март 2024: 4, 11, 18, 25 - понедельники; 6, 13, 20, 27 - среды
	dates := expandPlanDates(domain.PlanWeekly, date(2024, 3, 1), date(2024, 3, 31), []int{1, 3})

	require.Len(t, dates, 8)
	for _, d := range dates {
		wd := int(d.Weekday())
		assert.True(t, wd == 1 || wd == 3, "unexpected weekday %d on %s", wd, d.Format("2006-01-02"))
	}
}

func TestExpandPlanDates_WeeklyEmptyDaysOccupiesNothing(t *testing.T) {
	dates := expandPlanDates(domain.PlanWeekly, date(2024, 3, 1), date(2024, 3, 31), nil)
	assert.Empty(t, dates)
}

func TestExpandPlanDates_MonthlyCoversWholeRange(t *testing.T) {
	dates := expandPlanDates(domain.PlanMonthly, date(2024, 3, 1), date(2024, 3, 31), nil)
	assert.Len(t, dates, 31)
}

func TestIntervalMinutes(t *testing.T) {
	assert.Equal(t, 60, intervalMinutes("10:00", "11:00"))
	assert.Equal(t, 180, intervalMinutes("09:00", "12:00"))
	assert.Equal(t, 30, intervalMinutes("10:00", "10:30"))
}

func existingReservation(plan domain.BookingPlan, start, end string, days []int) *domain.Reservation {
	return &domain.Reservation{
		ID:            10,
		Plan:          plan,
		PlanStartDate: date(2024, 3, 1),
		PlanEndDate:   date(2024, 3, 31),
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
		RecurringDays: days,
		Status:        domain.StatusConfirmed,
	}
}

func TestFindConflict_OverlapDetected(t *testing.T) {
	existing := []*domain.Reservation{
		existingReservation(domain.PlanDaily, "10:00", "11:00", nil),
	}

	conflictDate, found := findConflict(
		[]time.Time{date(2024, 3, 6)},
		"10:00", "11:00",
		existing,
	)
	require.True(t, found)
	assert.Equal(t, date(2024, 3, 6), conflictDate)
}

func TestFindConflict_TouchingIntervalsDoNotConflict(t *testing.T) {
	existing := []*domain.Reservation{
		existingReservation(domain.PlanDaily, "10:00", "11:00", nil),
	}

	_, found := findConflict([]time.Time{date(2024, 3, 6)}, "09:00", "10:00", existing)
	assert.False(t, found)

	_, found = findConflict([]time.Time{date(2024, 3, 6)}, "11:00", "12:00", existing)
	assert.False(t, found)
}

func TestFindConflict_CancelledReservationIgnored(t *testing.T) {
	cancelled := existingReservation(domain.PlanDaily, "10:00", "11:00", nil)
	cancelled.Status = domain.StatusCancelledByUser

	_, found := findConflict([]time.Time{date(2024, 3, 6)}, "10:00", "11:00",
		[]*domain.Reservation{cancelled})
	assert.False(t, found)
}

func TestFindConflict_WeeklyOnlyConflictsOnItsWeekdays(t *testing.T) {
	// Существующее weekly-бронирование по средам
	existing := []*domain.Reservation{
		existingReservation(domain.PlanWeekly, "10:00", "11:00", []int{3}),
	}

	// Вторник 2024-03-05 свободен
	_, found := findConflict([]time.Time{date(2024, 3, 5)}, "10:00", "11:00", existing)
	assert.False(t, found)

	// Среда 2024-03-06 занята
	conflictDate, found := findConflict([]time.Time{date(2024, 3, 5), date(2024, 3, 6)},
		"10:00", "11:00", existing)
	require.True(t, found)
	assert.Equal(t, date(2024, 3, 6), conflictDate)
}

func TestFindConflict_WeeklyEmptyDaysBlocksNothing(t *testing.T) {
	existing := []*domain.Reservation{
		existingReservation(domain.PlanWeekly, "10:00", "11:00", nil),
	}

	_, found := findConflict([]time.Time{date(2024, 3, 6)}, "10:00", "11:00", existing)
	assert.False(t, found)
}

func TestFindConflict_DateOutsideExistingPlanRange(t *testing.T) {
	existing := []*domain.Reservation{
		existingReservation(domain.PlanDaily, "10:00", "11:00", nil),
	}

	// Существующий план заканчивается 31 марта
	_, found := findConflict([]time.Time{date(2024, 4, 1)}, "10:00", "11:00", existing)
	assert.False(t, found)
}

func TestFindConflict_MalformedExistingSkipped(t *testing.T) {
	malformed := existingReservation(domain.PlanDaily, "garbage", "11:00", nil)

	_, found := findConflict([]time.Time{date(2024, 3, 6)}, "10:00", "11:00",
		[]*domain.Reservation{malformed})
	assert.False(t, found)
}
