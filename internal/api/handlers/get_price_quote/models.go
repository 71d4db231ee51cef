package get_price_quote

import (
	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
	getPriceQuote "github.com/aitzhn/PS-BookingService/internal/usecase/get_price_quote"
)

// AppliedDiscountResponse модель применённой скидки в HTTP ответе
type AppliedDiscountResponse struct {
	Kind    string  `json:"kind"`
	Percent float64 `json:"percent,omitempty"`
	Amount  float64 `json:"amount"`
	Points  int     `json:"points,omitempty"`
}

// PriceQuoteResponse модель HTTP ответа с расчетом стоимости
type PriceQuoteResponse struct {
	RoomID        int64                     `json:"room_id"`
	Date          string                    `json:"date"`
	DayClass      string                    `json:"day_class"`
	BasePrice     float64                   `json:"base_price"`
	OriginalPrice float64                   `json:"original_price"`
	FinalPrice    float64                   `json:"final_price"`
	TotalDiscount float64                   `json:"total_discount"`
	Breakdown     []AppliedDiscountResponse `json:"breakdown"`
	Degraded      bool                      `json:"degraded,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getPriceQuote.Response) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		RoomID:        resp.RoomID,
		Date:          resp.Date.Format(domain.DateFormat),
		DayClass:      string(resp.DayClass),
		BasePrice:     resp.BasePrice,
		OriginalPrice: resp.OriginalPrice,
		FinalPrice:    resp.FinalPrice,
		TotalDiscount: resp.TotalDiscount,
		Breakdown:     fromBreakdown(resp.Breakdown),
		Degraded:      resp.Degraded,
	}
}

func fromBreakdown(breakdown []pricing.AppliedDiscount) []AppliedDiscountResponse {
	result := make([]AppliedDiscountResponse, 0, len(breakdown))
	for _, d := range breakdown {
		result = append(result, AppliedDiscountResponse{
			Kind:    string(d.Kind),
			Percent: d.Percent,
			Amount:  d.Amount,
			Points:  d.Points,
		})
	}
	return result
}
