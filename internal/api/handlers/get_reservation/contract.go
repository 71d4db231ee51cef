package get_reservation

import (
	"context"

	"github.com/aitzhn/PS-BookingService/internal/service/reservations/models"
)

// ReservationsService интерфейс сервиса бронирований
type ReservationsService interface {
	GetByID(ctx context.Context, reservationID int64, requesterID int64) (*models.ReservationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
