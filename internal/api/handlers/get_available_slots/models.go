package get_available_slots

import (
	"time"

	"github.com/playgrid/turf-booking-service/internal/domain"
	getAvailableSlots "github.com/playgrid/turf-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string          `json:"date"`
	TurfID      int64           `json:"turf_id"`
	Slots       []AvailableSlot `json:"slots"`
	BookedCount int             `json:"booked_count"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Display:   slot.Display,
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:        resp.Date,
		TurfID:      resp.TurfID,
		Slots:       slots,
		BookedCount: resp.BookedCount,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(userID, turfID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID: userID,
		TurfID: turfID,
		Date:   date,
	}, nil
}
