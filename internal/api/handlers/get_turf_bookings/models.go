package get_turf_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	"github.com/playgrid/turf-booking-service/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	turfID int64,
	userID int64,
	statusStr string,
	dateStr string,
	fromStr string,
	toStr string,
	includeInactiveStr string,
) (*models.GetTurfReservationsRequest, error) {
	req := &models.GetTurfReservationsRequest{
		UserID:          userID,
		TurfID:          turfID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим date если указана - эквивалентно периоду из одного дня
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	// Парсим период from/to если указан
	if fromStr != "" && toStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		if to.Before(from) {
			return nil, fmt.Errorf("to date is before from date")
		}
		req.StartDate = &from
		req.EndDate = &to
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
