package schedule

import (
	"context"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/internal/integrations/turfservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.TurfSchedule) (*domain.TurfSchedule, error)
	Update(ctx context.Context, s *domain.TurfSchedule) error
	GetByTurfID(ctx context.Context, turfID int64) (*domain.TurfSchedule, error)
	GetWithFallback(ctx context.Context, turfID, ownerID int64) (*domain.TurfSchedule, error)
}

// TurfServiceClient интерфейс клиента для TurfService
type TurfServiceClient interface {
	GetTurf(ctx context.Context, turfID int64) (*turfservice.Turf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
