package create_reservation

import (
	"context"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/integrations/profileservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// DatePriceRepository интерфейс репозитория переопределений цен
type DatePriceRepository interface {
	GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) (*domain.DatePrice, error)
}

// ProfileServiceClient интерфейс клиента профильного сервиса
type ProfileServiceClient interface {
	GetLoyaltyProfile(ctx context.Context, userID int64) (*profileservice.LoyaltyProfile, error)
	GetLoyaltyProfileWithGracefulDegradation(ctx context.Context, userID int64) (*profileservice.LoyaltyProfile, error)
	RedeemPoints(ctx context.Context, userID int64, points int, reservationID int64) error
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
