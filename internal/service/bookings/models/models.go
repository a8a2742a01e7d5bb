package models

import (
	"errors"
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"user_id"`
	CancellationReason string `json:"cancellation_reason"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"user_id"`
	Status *string `json:"status,omitempty"`
}

// GetTurfReservationsRequest запрос на получение бронирований площадки
type GetTurfReservationsRequest struct {
	UserID          int64      `json:"user_id"`
	TurfID          int64      `json:"turf_id"`
	StartDate       *time.Time `json:"start_date,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"end_date,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"include_inactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTurfReservationsRequest) ToDomainFilter() (domain.TurfReservationsFilter, error) {
	filter := domain.TurfReservationsFilter{
		TurfID:          r.TurfID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	TurfID        int64  `json:"turf_id"`
	Plan          string `json:"plan"`
	PlanStartDate string `json:"plan_start_date"` // "2024-03-06"
	PlanEndDate   string `json:"plan_end_date"`
	StartTime     string `json:"start_time"` // "10:00"
	EndTime       string `json:"end_time"`
	RecurringDays []int  `json:"recurring_days,omitempty"`
	Status        string `json:"status"`
	TotalPrice    float64 `json:"total_price"`

	// Денормализованные данные
	PlayerName  *string `json:"player_name,omitempty"`
	PlayerPhone *string `json:"player_phone,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		TurfID:             r.TurfID,
		Plan:               string(r.Plan),
		PlanStartDate:      r.PlanStartDate.Format(domain.DateFormat),
		PlanEndDate:        r.PlanEndDate.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		RecurringDays:      r.RecurringDays,
		Status:             string(r.Status),
		TotalPrice:         r.TotalPrice,
		PlayerName:         r.PlayerName,
		PlayerPhone:        r.PlayerPhone,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if reservationResp := FromDomainReservation(reservation); reservationResp != nil {
			resp.Reservations[i] = *reservationResp
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	// Валидируем статус
	validStatuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByTurf,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
