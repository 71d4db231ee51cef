package list_date_prices

import (
	"context"

	"github.com/aitzhn/PS-BookingService/internal/service/dateprices/models"
)

// DatePricesService интерфейс сервиса переопределений цен
type DatePricesService interface {
	List(ctx context.Context, req *models.ListDatePricesRequest) (*models.DatePriceListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
