package get_turf_schedule

import (
	"context"

	"github.com/playgrid/turf-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetForTurf(ctx context.Context, turfID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
