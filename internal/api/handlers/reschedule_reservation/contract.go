package reschedule_reservation

import (
	"context"

	rescheduleReservation "github.com/aitzhn/PS-BookingService/internal/usecase/reschedule_reservation"
)

// RescheduleReservationUseCase интерфейс use case переноса бронирования
type RescheduleReservationUseCase interface {
	Execute(ctx context.Context, req *rescheduleReservation.Request) (*rescheduleReservation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
