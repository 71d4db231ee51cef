package create_reservation

import (
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
	createReservation "github.com/aitzhn/PS-BookingService/internal/usecase/create_reservation"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID            int64   `json:"roomId"`
	Date              string  `json:"date"`      // "2026-03-14"
	StartTime         string  `json:"startTime"` // "11:00"
	PointsToRedeem    int     `json:"pointsToRedeem,omitempty"`
	DisableLastMinute bool    `json:"disableLastMinute,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// AppliedDiscountResponse одна позиция breakdown в HTTP ответе
type AppliedDiscountResponse struct {
	Kind    string  `json:"kind"`
	Percent float64 `json:"percent,omitempty"`
	Amount  float64 `json:"amount"`
	Points  int     `json:"points,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	RoomID          int64  `json:"roomId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"paymentStatus"`

	BasePrice     float64                   `json:"basePrice"`
	FinalPrice    float64                   `json:"finalPrice"`
	DiscountTotal float64                   `json:"discountTotal"`
	PointsSpent   int                       `json:"pointsSpent,omitempty"`
	Breakdown     []AppliedDiscountResponse `json:"breakdown"`
	Degraded      bool                      `json:"degraded,omitempty"`

	Notes *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:            userID,
		RoomID:            r.RoomID,
		Date:              date,
		StartTime:         startTime,
		PointsToRedeem:    r.PointsToRedeem,
		DisableLastMinute: r.DisableLastMinute,
		Notes:             r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		RoomID:          resp.RoomID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		BasePrice:       resp.BasePrice,
		FinalPrice:      resp.FinalPrice,
		DiscountTotal:   resp.DiscountTotal,
		PointsSpent:     resp.PointsSpent,
		Breakdown:       FromBreakdown(resp.Breakdown),
		Degraded:        resp.Degraded,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromBreakdown конвертирует breakdown скидок в HTTP представление
func FromBreakdown(breakdown []pricing.AppliedDiscount) []AppliedDiscountResponse {
	result := make([]AppliedDiscountResponse, len(breakdown))
	for i, d := range breakdown {
		result[i] = AppliedDiscountResponse{
			Kind:    string(d.Kind),
			Percent: d.Percent,
			Amount:  d.Amount,
			Points:  d.Points,
		}
	}
	return result
}
