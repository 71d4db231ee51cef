package get_price_quote

import (
	"context"

	getPriceQuote "github.com/aitzhn/PS-BookingService/internal/usecase/get_price_quote"
)

// GetPriceQuoteUseCase интерфейс use case расчета стоимости
type GetPriceQuoteUseCase interface {
	Execute(ctx context.Context, req *getPriceQuote.Request) (*getPriceQuote.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
