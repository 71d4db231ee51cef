package upsert_date_price

import (
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/service/dateprices/models"
)

// UpsertDatePriceRequest модель HTTP запроса на установку цены
type UpsertDatePriceRequest struct {
	Date  string  `json:"date"`  // Дата в формате YYYY-MM-DD
	Price float64 `json:"price"` // Цена за блок, 0 допустим
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertDatePriceRequest) ToServiceRequest(userID, roomID int64) (*models.UpsertDatePriceRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.UpsertDatePriceRequest{
		UserID: userID,
		RoomID: roomID,
		Date:   date,
		Price:  r.Price,
	}, nil
}
