package get_turf_bookings

import (
	"context"

	"github.com/playgrid/turf-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetTurfReservations(ctx context.Context, req *models.GetTurfReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
