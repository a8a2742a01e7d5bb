package turfservice

// Turf модель площадки из TurfService (каталог площадок)
type Turf struct {
	ID           int64   `json:"id"`
	OwnerID      int64   `json:"owner_id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	SportType    string  `json:"sport_type"` // football, cricket, badminton, ...
	PricePerSlot float64 `json:"price_per_slot"`
	IsActive     bool    `json:"is_active"`
	StaffIDs     []int64 `json:"staff_ids"` // сотрудники, управляющие площадкой
}

// IsManagedBy возвращает true, если пользователь владелец площадки или её сотрудник
func (t *Turf) IsManagedBy(userID int64) bool {
	if t.OwnerID == userID {
		return true
	}
	for _, id := range t.StaffIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от TurfService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
