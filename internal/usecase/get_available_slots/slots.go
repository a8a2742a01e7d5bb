package get_available_slots

import (
	"fmt"
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/pkg/types"
)

// applicableReservations отбирает бронирования, занимающие свои слоты в указанную дату
//
// Фильтр повторений: weekly-бронирование действует только в дни недели из
// recurring_days (0=воскресенье..6=суббота); остальные планы (single, daily,
// monthly) уже отобраны хранилищем по диапазону плана и проходят всегда.
// Weekly-бронирование с пустым recurring_days не блокирует ни одного дня;
// при политике EmptyRecurrenceIsInvalid такая запись дополнительно логируется
// как повреждённая.
//
// Бронирование с нечитаемым start_time/end_time исключается из проверок и
// логируется: одна битая запись не должна ни ронять расчет, ни гасить всю сетку
func applicableReservations(
	reservations []*domain.Reservation,
	date time.Time,
	policy domain.EmptyRecurrencePolicy,
	log Logger,
) []*domain.Reservation {
	applicable := make([]*domain.Reservation, 0, len(reservations))

	for _, res := range reservations {
		if res.Plan == domain.PlanWeekly && len(res.RecurringDays) == 0 {
			if policy == domain.EmptyRecurrenceIsInvalid {
				log.Warn("GetAvailableSlots: reservation id=%d is weekly with empty recurring_days, treated as malformed", res.ID)
			}
			continue
		}

		if !res.AppliesOn(date) {
			continue
		}

		if _, _, err := res.Interval(); err != nil {
			log.Warn("GetAvailableSlots: reservation id=%d has malformed time interval, excluded: %v", res.ID, err)
			continue
		}

		applicable = append(applicable, res)
	}

	return applicable
}

// buildSlotGrid генерирует сетку слотов рабочего окна и помечает занятость
//
// Слоты идут подряд от open_hour до close_hour с шагом slot_duration_minutes;
// слот, не помещающийся в окно целиком, не создается. Слот занят, если хотя бы
// одно бронирование [s2, e2) пересекается с ним как полуоткрытый интервал:
// s < e2 И e > s2. Строгие неравенства - граничащие интервалы не пересекаются:
//   - Слот 10:00-11:00, бронирование 10:00-11:00 -> занят
//   - Слот 09:00-10:00, бронирование 10:00-11:00 -> свободен (граничат)
//   - Слот 11:00-12:00, бронирование 10:00-11:00 -> свободен (граничат)
//
// Расчет детерминирован: текущее время на доступность не влияет, только дата запроса
func buildSlotGrid(schedule *domain.TurfSchedule, reservations []*domain.Reservation) ([]Slot, error) {
	openTime, err := types.NewTimeStringFromString(fmt.Sprintf("%02d:00", schedule.OpenHour))
	if err != nil {
		return nil, fmt.Errorf("invalid open hour %d: %v", schedule.OpenHour, err)
	}

	closeTime, err := types.NewTimeStringFromString(fmt.Sprintf("%02d:00", schedule.CloseHour))
	if err != nil {
		return nil, fmt.Errorf("invalid close hour %d: %v", schedule.CloseHour, err)
	}

	slots := make([]Slot, 0, schedule.SlotsPerDay())
	slotStart := openTime

	for slotStart.IsBefore(closeTime) {
		slotEnd, err := slotStart.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, Slot{
			StartTime: slotStart,
			EndTime:   slotEnd,
			Display:   domain.FormatSlotDisplay(slotStart, slotEnd),
			Available: !isSlotBooked(slotStart, slotEnd, reservations),
		})

		slotStart = slotEnd
	}

	return slots, nil
}

// isSlotBooked проверяет, пересекается ли слот хотя бы с одним бронированием
func isSlotBooked(slotStart, slotEnd types.TimeString, reservations []*domain.Reservation) bool {
	for _, res := range reservations {
		resStart, resEnd, err := res.Interval()
		if err != nil {
			// Битые записи уже исключены фильтром, здесь просто пропускаем
			continue
		}

		if domain.Overlaps(resStart, resEnd, slotStart, slotEnd) {
			return true
		}
	}
	return false
}
