package create_booking

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrTurfInactive возвращается, когда площадка отключена владельцем
	ErrTurfInactive = errors.New("turf is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	// (вне рабочего окна, не по границам слотов, start >= end)
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidRecurrence возвращается для weekly-плана без recurring_days
	// или с днями вне диапазона 0..6
	ErrInvalidRecurrence = errors.New("invalid recurring days")

	// ErrSlotNotAvailable возвращается при конфликте с существующим бронированием
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
