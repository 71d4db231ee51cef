package get_user_reservations

import (
	"context"

	"github.com/aitzhn/PS-BookingService/internal/service/reservations/models"
)

// ReservationsService интерфейс сервиса бронирований
type ReservationsService interface {
	GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
