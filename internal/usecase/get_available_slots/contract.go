package get_available_slots

import (
	"context"
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
)

// ReservationRepository интерфейс хранилища бронирований
// Контракт: возвращаются только неотменённые бронирования площадки, чей диапазон
// плана покрывает дату. Движок слотов не перепроверяет ни статус, ни площадку
type ReservationRepository interface {
	GetCoveringDate(ctx context.Context, turfID int64, date time.Time) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория расписаний площадок
type ScheduleRepository interface {
	// GetWithFallback получает расписание с учетом иерархии: площадка -> владелец
	GetWithFallback(ctx context.Context, turfID, ownerID int64) (*domain.TurfSchedule, error)
}

// TurfServiceClient интерфейс клиента для TurfService
type TurfServiceClient interface {
	GetTurf(ctx context.Context, turfID int64) (*turfservice.Turf, error)
}

// SlotCache интерфейс кэша рассчитанных сеток слотов
type SlotCache interface {
	Get(ctx context.Context, turfID int64, date time.Time) ([]byte, bool)
	Set(ctx context.Context, turfID int64, date time.Time, payload []byte)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
