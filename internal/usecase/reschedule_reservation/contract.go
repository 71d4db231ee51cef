package reschedule_reservation

import (
	"context"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
	Reschedule(ctx context.Context, id int64, date time.Time, startTime types.TimeString, basePrice, finalPrice, discountTotal float64) error
}

// DatePriceRepository интерфейс репозитория переопределений цен
type DatePriceRepository interface {
	GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) (*domain.DatePrice, error)
}

// ManagerChecker проверка прав менеджера студии
type ManagerChecker interface {
	IsManager(userID int64) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
