package create_reservation

import (
	"time"

	"github.com/aitzhn/PS-BookingService/internal/pricing"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя
	RoomID    int64            // ID зала
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "11:00")

	PointsToRedeem    int     // Запрошенное списание баллов (0 - не списывать)
	DisableLastMinute bool    // Не применять last-minute скидку
	Notes             *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID пользователя
	RoomID          int64            // ID зала
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	PaymentStatus   string           // Платежный статус

	// Ценовой снимок
	BasePrice     float64
	FinalPrice    float64
	DiscountTotal float64
	PointsSpent   int
	Breakdown     []pricing.AppliedDiscount

	// Degraded признак расчета без скидок из-за недоступности профильного сервиса
	Degraded bool

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
