package delete_date_price

import (
	"context"

	"github.com/aitzhn/PS-BookingService/internal/service/dateprices/models"
)

// DatePricesService интерфейс сервиса переопределений цен
type DatePricesService interface {
	Delete(ctx context.Context, req *models.DeleteDatePriceRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
