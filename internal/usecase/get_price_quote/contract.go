package get_price_quote

import (
	"context"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/integrations/profileservice"
)

// DatePriceRepository интерфейс репозитория переопределений цен
type DatePriceRepository interface {
	GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) (*domain.DatePrice, error)
}

// ProfileServiceClient интерфейс клиента профильного сервиса
type ProfileServiceClient interface {
	GetLoyaltyProfileWithGracefulDegradation(ctx context.Context, userID int64) (*profileservice.LoyaltyProfile, error)
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
