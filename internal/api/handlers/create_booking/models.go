package create_booking

import (
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	createBooking "github.com/playgrid/turf-booking-service/internal/usecase/create_booking"
	"github.com/playgrid/turf-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TurfID        int64   `json:"turf_id"`
	Plan          string  `json:"plan"`                     // single | daily | weekly | monthly
	StartDate     string  `json:"start_date"`               // "2024-03-06"
	EndDate       *string `json:"end_date,omitempty"`       // обязателен для всех планов кроме single
	StartTime     string  `json:"start_time"`               // "10:00"
	EndTime       string  `json:"end_time"`                 // "11:00"
	RecurringDays []int   `json:"recurring_days,omitempty"` // 0=воскресенье..6=суббота, только для weekly
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	TurfID        int64   `json:"turf_id"`
	Plan          string  `json:"plan"`
	PlanStartDate string  `json:"plan_start_date"`
	PlanEndDate   string  `json:"plan_end_date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	RecurringDays []int   `json:"recurring_days,omitempty"`
	Status        string  `json:"status"`
	TotalPrice    float64 `json:"total_price"`
	PlayerName    *string `json:"player_name,omitempty"`
	PlayerPhone   *string `json:"player_phone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату начала плана
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	// Дата окончания опциональна - для single совпадает с датой начала
	endDate := startDate
	if r.EndDate != nil {
		endDate, err = time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		TurfID:        r.TurfID,
		Plan:          domain.BookingPlan(r.Plan),
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     startTime,
		EndTime:       endTime,
		RecurringDays: r.RecurringDays,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		TurfID:        resp.TurfID,
		Plan:          resp.Plan,
		PlanStartDate: resp.PlanStartDate.Format(domain.DateFormat),
		PlanEndDate:   resp.PlanEndDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		RecurringDays: resp.RecurringDays,
		Status:        resp.Status,
		TotalPrice:    resp.TotalPrice,
		PlayerName:    resp.PlayerName,
		PlayerPhone:   resp.PlayerPhone,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
