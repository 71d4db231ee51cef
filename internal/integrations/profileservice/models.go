package profileservice

// LoyaltyProfile данные лояльности пользователя из ProfileService
type LoyaltyProfile struct {
	UserID                int64 `json:"user_id"`
	CompletedReservations int   `json:"completed_reservations"`
	HasReservations       bool  `json:"has_reservations"`
	LoyaltyPoints         int   `json:"loyalty_points"`
	Referred              bool  `json:"referred"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
