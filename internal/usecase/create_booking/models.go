package create_booking

import (
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64
	TurfID        int64
	Plan          domain.BookingPlan
	StartDate     time.Time // первая дата плана
	EndDate       time.Time // последняя дата плана; для single игнорируется
	StartTime     types.TimeString
	EndTime       types.TimeString
	RecurringDays []int // 0=воскресенье..6=суббота, только для weekly
	Notes         *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	TurfID        int64
	Plan          string
	PlanStartDate time.Time
	PlanEndDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	RecurringDays []int
	Status        string
	PlayerName    *string
	PlayerPhone   *string
	TotalPrice    float64
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
