package schedule

import "errors"

var (
	// ErrTurfNotFound площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")
	// ErrAccessDenied нет доступа к управлению расписанием
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidInput невалидные параметры расписания
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
