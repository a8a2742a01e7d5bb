package playerservice

import "errors"

var (
	// ErrPlayerNotFound возвращается, когда игрок не найден
	ErrPlayerNotFound = errors.New("player not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("playerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("playerservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что PlayerService недоступен и бронирование создается
	// без денормализованных данных игрока
	ErrServiceDegraded = errors.New("playerservice unavailable: graceful degradation applied")
)
