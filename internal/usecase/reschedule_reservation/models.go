package reschedule_reservation

import (
	"time"

	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	ReservationID int64            // ID переносимого бронирования
	UserID        int64            // Кто переносит (владелец или менеджер)
	Date          time.Time        // Новая дата
	StartTime     types.TimeString // Новое время начала
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID              int64
	UserID          int64
	RoomID          int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	// Пересчитанный ценовой снимок
	BasePrice     float64
	FinalPrice    float64
	DiscountTotal float64
	PointsSpent   int

	RescheduleCount int
}
