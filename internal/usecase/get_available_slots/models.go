package get_available_slots

import (
	"time"

	"github.com/playgrid/turf-booking-service/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	UserID int64     // ID пользователя (для логирования, не влияет на результат)
	TurfID int64     // ID площадки
	Date   time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с сеткой слотов
// JSON-теги используются и для кэша, и форма совпадает с контрактом фронтенда
type Response struct {
	Date        string `json:"date"` // YYYY-MM-DD
	TurfID      int64  `json:"turf_id"`
	Slots       []Slot `json:"slots"`
	BookedCount int    `json:"booked_count"` // число бронирований, действующих в эту дату
}

// Slot модель одного слота сетки
type Slot struct {
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
	Display   string           `json:"display"` // 12-часовой формат, например "06:00 AM - 07:00 AM"
	Available bool             `json:"available"`
}
