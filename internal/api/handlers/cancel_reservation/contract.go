package cancel_reservation

import (
	"context"

	"github.com/aitzhn/PS-BookingService/internal/service/reservations/models"
)

// ReservationsService интерфейс сервиса бронирований
type ReservationsService interface {
	Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
