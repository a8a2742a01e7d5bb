package create_booking

import (
	"context"
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/internal/integrations/playerservice"
	"github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	// GetOverlappingRange получает неотменённые бронирования площадки,
	// чей диапазон плана пересекается с [start, end] (FOR UPDATE внутри транзакции)
	GetOverlappingRange(ctx context.Context, turfID int64, start, end time.Time) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория расписаний площадок
type ScheduleRepository interface {
	GetWithFallback(ctx context.Context, turfID, ownerID int64) (*domain.TurfSchedule, error)
}

// TurfServiceClient интерфейс клиента для TurfService
type TurfServiceClient interface {
	GetTurf(ctx context.Context, turfID int64) (*turfservice.Turf, error)
}

// PlayerServiceClient интерфейс клиента для PlayerService
type PlayerServiceClient interface {
	GetPlayerWithGracefulDegradation(ctx context.Context, userID int64) (*playerservice.Player, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotCacheInvalidator интерфейс инвалидации кэша сеток слотов
type SlotCacheInvalidator interface {
	Invalidate(ctx context.Context, turfID int64, dates ...time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
