package domain

// Default operating window: hourly slots from 06:00 to 23:00
const (
	DefaultOpenHour            = 6
	DefaultCloseHour           = 23
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinOpenHour             = 0
	MaxCloseHour            = 23
	MinSlotDurationMinutes  = 15
	MaxSlotDurationMinutes  = 240
	MaxPlanRangeDays        = 366 // самый длинный допустимый план — год
	MaxNotesLength          = 500
	MaxCancelReasonLength   = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// EmptyRecurrencePolicy определяет, как движок слотов трактует weekly-бронирование
// с пустым recurring_days. В обоих случаях такое бронирование не блокирует ни одного
// дня; при EmptyRecurrenceIsInvalid запись дополнительно помечается как некорректная
type EmptyRecurrencePolicy string

const (
	// EmptyRecurrenceBlocksNothing пустой список дней = "нет повторений", молча пропускаем
	EmptyRecurrenceBlocksNothing EmptyRecurrencePolicy = "blocks_nothing"

	// EmptyRecurrenceIsInvalid пустой список дней = повреждённые данные, логируем warning
	EmptyRecurrenceIsInvalid EmptyRecurrencePolicy = "invalid"
)

// InactiveStatuses список статусов, не влияющих на доступность слотов
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByUser,
	StatusCancelledByTurf,
}

// ActiveStatuses список статусов, блокирующих слоты
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
