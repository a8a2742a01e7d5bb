package playerservice

// Player модель игрока из PlayerService
type Player struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ErrorResponse модель ошибки от PlayerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
