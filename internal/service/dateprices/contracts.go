package dateprices

import (
	"context"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
)

// DatePriceRepository интерфейс репозитория переопределений цен
type DatePriceRepository interface {
	GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) (*domain.DatePrice, error)
	GetByRoomAndRange(ctx context.Context, roomID int64, startDate, endDate time.Time) ([]*domain.DatePrice, error)
	Upsert(ctx context.Context, dp *domain.DatePrice) (*domain.DatePrice, error)
	Delete(ctx context.Context, roomID int64, date time.Time) error
}

// ManagerChecker проверка прав менеджера студии
type ManagerChecker interface {
	IsManager(userID int64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
