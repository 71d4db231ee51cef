package models

import (
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
)

// Request модели

// UpsertDatePriceRequest запрос на установку цены на дату
type UpsertDatePriceRequest struct {
	UserID int64     `json:"userId"`
	RoomID int64     `json:"roomId"`
	Date   time.Time `json:"date"`
	Price  float64   `json:"price"`
}

// ListDatePricesRequest запрос на получение цен за период
type ListDatePricesRequest struct {
	UserID    int64     `json:"userId"`
	RoomID    int64     `json:"roomId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// DeleteDatePriceRequest запрос на удаление цены на дату
type DeleteDatePriceRequest struct {
	UserID int64     `json:"userId"`
	RoomID int64     `json:"roomId"`
	Date   time.Time `json:"date"`
}

// Response модели

// DatePriceResponse ответ с переопределением цены
type DatePriceResponse struct {
	ID     int64   `json:"id"`
	RoomID int64   `json:"roomId"`
	Date   string  `json:"date"` // "2026-03-14"
	Price  float64 `json:"price"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DatePriceListResponse ответ со списком переопределений цен
type DatePriceListResponse struct {
	DatePrices []DatePriceResponse `json:"datePrices"`
}

// Методы конвертации

// FromDomainDatePrice конвертирует domain модель в DTO
func FromDomainDatePrice(dp *domain.DatePrice) *DatePriceResponse {
	if dp == nil {
		return nil
	}

	return &DatePriceResponse{
		ID:        dp.ID,
		RoomID:    dp.RoomID,
		Date:      dp.Date.Format(domain.DateFormat),
		Price:     dp.Price,
		CreatedAt: dp.CreatedAt,
		UpdatedAt: dp.UpdatedAt,
	}
}

// FromDomainDatePriceList конвертирует список domain моделей в DTO
func FromDomainDatePriceList(prices []*domain.DatePrice) *DatePriceListResponse {
	if prices == nil {
		return &DatePriceListResponse{
			DatePrices: []DatePriceResponse{},
		}
	}

	resp := &DatePriceListResponse{
		DatePrices: make([]DatePriceResponse, len(prices)),
	}

	for i, dp := range prices {
		if r := FromDomainDatePrice(dp); r != nil {
			resp.DatePrices[i] = *r
		}
	}

	return resp
}
