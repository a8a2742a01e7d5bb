package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
// Дата обязательна; некорректность формата отсекается еще на уровне handler
// при парсинге, сюда приходит либо нулевое, либо валидное значение
func validateRequest(req *Request) error {
	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	return nil
}
