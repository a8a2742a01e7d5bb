package create_booking

import (
	"fmt"
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	if !req.Plan.IsValid() {
		return fmt.Errorf("%w: unknown booking plan %q", ErrInvalidInput, req.Plan)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidDate)
	}

	// Для single план занимает ровно одну дату
	if req.Plan != domain.PlanSingle {
		if req.EndDate.IsZero() {
			return fmt.Errorf("%w: end date is required for %s plan", ErrInvalidDate, req.Plan)
		}
		if req.EndDate.Before(req.StartDate) {
			return fmt.Errorf("%w: end date is before start date", ErrInvalidDate)
		}
		if req.EndDate.Sub(req.StartDate) > domain.MaxPlanRangeDays*24*time.Hour {
			return fmt.Errorf("%w: plan range exceeds %d days", ErrInvalidDate, domain.MaxPlanRangeDays)
		}
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidTimeRange)
	}

	// Пустой или некорректный recurring_days отклоняется при создании:
	// движок слотов такую запись всё равно не учитывал бы ни в один день
	if req.Plan == domain.PlanWeekly {
		if len(req.RecurringDays) == 0 {
			return fmt.Errorf("%w: weekly plan requires at least one recurring day", ErrInvalidRecurrence)
		}
		for _, d := range req.RecurringDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("%w: recurring day %d is out of range 0..6", ErrInvalidRecurrence, d)
			}
		}
	} else if len(req.RecurringDays) > 0 {
		return fmt.Errorf("%w: recurring days are only allowed for weekly plan", ErrInvalidRecurrence)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDateNotInPast проверяет, что первая дата плана не в прошлом
func validateDateNotInPast(startDate, now time.Time) error {
	dateOnly := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateWithinWindow проверяет, что интервал лежит внутри рабочего окна
// и выровнен по границам слотов расписания
func validateWithinWindow(schedule *domain.TurfSchedule, start, end types.TimeString) error {
	startTime, err := start.ToTime()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	endTime, err := end.ToTime()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	startMinutes := startTime.Hour()*60 + startTime.Minute()
	endMinutes := endTime.Hour()*60 + endTime.Minute()
	openMinutes := schedule.OpenHour * 60
	closeMinutes := schedule.CloseHour * 60

	if startMinutes < openMinutes || endMinutes > closeMinutes {
		return fmt.Errorf("%w: interval %s-%s is outside operating hours %02d:00-%02d:00",
			ErrInvalidTimeRange, start, end, schedule.OpenHour, schedule.CloseHour)
	}

	if (startMinutes-openMinutes)%schedule.SlotDurationMinutes != 0 ||
		(endMinutes-startMinutes)%schedule.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: interval %s-%s is not aligned to %d-minute slots",
			ErrInvalidTimeRange, start, end, schedule.SlotDurationMinutes)
	}

	return nil
}

// expandPlanDates раскрывает план в список дат, которые он занимает
// Для weekly учитываются только дни недели из recurringDays
func expandPlanDates(plan domain.BookingPlan, startDate, endDate time.Time, recurringDays []int) []time.Time {
	if plan == domain.PlanSingle {
		return []time.Time{startDate}
	}

	daySet := make(map[int]struct{}, len(recurringDays))
	for _, d := range recurringDays {
		daySet[d] = struct{}{}
	}

	dates := make([]time.Time, 0)
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		if plan == domain.PlanWeekly {
			if _, ok := daySet[int(d.Weekday())]; !ok {
				continue
			}
		}
		dates = append(dates, d)
	}

	return dates
}

// intervalMinutes длительность интервала [start, end) в минутах
// Валидность границ уже проверена ранее
func intervalMinutes(start, end types.TimeString) int {
	startTime, errS := start.ToTime()
	endTime, errE := end.ToTime()
	if errS != nil || errE != nil {
		return 0
	}
	return int(endTime.Sub(startTime).Minutes())
}

// findConflict ищет первую дату, в которую запрошенный интервал пересекается
// с существующим бронированием. Использует те же предикаты, что движок слотов:
// полуоткрытые интервалы, строгие неравенства, weekly только в свои дни недели
func findConflict(
	dates []time.Time,
	start, end types.TimeString,
	existing []*domain.Reservation,
) (time.Time, bool) {
	for _, date := range dates {
		for _, res := range existing {
			if !res.IsActive() {
				continue
			}
			if date.Before(res.PlanStartDate) || date.After(res.PlanEndDate) {
				continue
			}
			if res.Plan == domain.PlanWeekly && len(res.RecurringDays) == 0 {
				continue
			}
			if !res.AppliesOn(date) {
				continue
			}

			resStart, resEnd, err := res.Interval()
			if err != nil {
				// Битую запись пропускаем, как и при расчете сетки
				continue
			}

			if domain.Overlaps(resStart, resEnd, start, end) {
				return date, true
			}
		}
	}

	return time.Time{}, false
}
