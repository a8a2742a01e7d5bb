package bookings

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrTurfNotFound площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")
	// ErrAccessDenied нет доступа к бронированию
	ErrAccessDenied = errors.New("access denied")
	// ErrCannotCancel бронирование нельзя отменить в текущем статусе
	ErrCannotCancel = errors.New("reservation cannot be cancelled")
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
