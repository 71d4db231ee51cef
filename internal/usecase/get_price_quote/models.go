package get_price_quote

import (
	"time"

	"github.com/aitzhn/PS-BookingService/internal/pricing"
)

// Request модель запроса на расчет стоимости
type Request struct {
	UserID *int64    // ID пользователя; nil для анонимного запроса
	RoomID int64     // ID зала
	Date   time.Time // Дата бронирования (без времени)
	Blocks int       // Число бронируемых блоков, 0 трактуется как 1

	PointsToRedeem    int  // Запрошенное списание баллов
	DisableLastMinute bool // Не применять last-minute скидку
}

// Response модель ответа с расчетом стоимости
type Response struct {
	RoomID   int64
	Date     time.Time
	DayClass pricing.DayClass // Классификация даты: normal / weekend / holiday

	BasePrice     float64 // Цена одного блока до скидок
	OriginalPrice float64 // BasePrice * Blocks
	FinalPrice    float64 // Итоговая цена после скидок
	TotalDiscount float64 // OriginalPrice - FinalPrice
	Breakdown     []pricing.AppliedDiscount

	// Degraded признак ответа без скидок: профильный сервис недоступен,
	// расчет сделан только по базовой цене
	Degraded bool
}
