package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeFormat формат времени "HH:MM" (24-часовой)
const timeFormat = "15:04"

// TimeString время суток в формате "HH:MM" (например, "06:00", "18:30")
// Хранится как строка, сравнивается и складывается через парсинг
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным временем в формате "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time format %q, expected HH:MM: %v", string(t), err)
	}
	return nil
}

// ToTime парсит значение в time.Time (дата будет нулевой)
func (t TimeString) ToTime() (time.Time, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format %q, expected HH:MM: %v", string(t), err)
	}
	return parsed, nil
}

// IsBefore возвращает true, если время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.ToTime()
	b, errB := other.ToTime()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.ToTime()
	b, errB := other.ToTime()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Переход через полночь считается ошибкой: слоты не выходят за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.ToTime()
	if err != nil {
		return "", err
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", string(t), minutes)
	}

	return NewTimeString(shifted), nil
}

// Format12Hour возвращает время в 12-часовом формате с AM/PM (например, "06:00 AM")
func (t TimeString) Format12Hour() (string, error) {
	parsed, err := t.ToTime()
	if err != nil {
		return "", err
	}
	return parsed.Format("03:04 PM"), nil
}

// Scan реализует sql.Scanner для чтения TIME-колонок из PostgreSQL
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

func (t *TimeString) scanString(s string) error {
	// PostgreSQL возвращает TIME как "HH:MM:SS", обрезаем секунды
	if len(s) >= 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
